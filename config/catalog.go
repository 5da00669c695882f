package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gasplit/internal/domain"
)

// CatalogFile is the on-disk shape of a category catalog. The sequence
// order of Categories is the first-match-wins priority order, so the
// catalog must stay a list, never a map.
type CatalogFile struct {
	Categories []domain.Category `yaml:"categories"`
}

// LoadCatalog reads a catalog YAML file. An empty path yields the
// built-in default catalog.
func LoadCatalog(path string) ([]domain.Category, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(cf.Categories) == 0 {
		return nil, fmt.Errorf("catalog %s defines no categories", path)
	}
	for i, c := range cf.Categories {
		if c.File == "" {
			return nil, fmt.Errorf("catalog %s: category %d has no file name", path, i)
		}
		if len(c.Patterns) == 0 {
			return nil, fmt.Errorf("catalog %s: category %s has no patterns", path, c.File)
		}
	}
	return cf.Categories, nil
}

// DefaultCatalog returns the built-in category table for the original
// monolithic spreadsheet script. Order matters: earlier categories win
// when two patterns could claim the same declaration.
func DefaultCatalog() []domain.Category {
	return []domain.Category{
		{
			File:        "config.gs",
			Description: "Configuration constants and cell mappings",
			Patterns:    []string{`^var (SHEET_NAME|USERS_SHEET|MIN_BALANCE|TOPUP_AMOUNT|TS_CELL|CURRENT_TIMEZONE|USERS_FIRST_MONTH|CELLS)\s*=`},
		},
		{
			File:        "utils-core.gs",
			Description: "Core utilities (date, props, bool, sheet)",
			Patterns:    []string{`^function (nowStamp|toBool|props_|getProp_|setProp_|sheet_|isWeekend|dbg_|formatCurrency|padStart)\(`},
		},
		{
			File:        "utils-sheets.gs",
			Description: "Sheet manipulation utilities",
			Patterns:    []string{`^function (setCellKeepFmt_|setNoteOnly_|a1_|fmt2dec_|clearNote_|safeErrorNote_|appendNoteTop_|setCellWithNote_)\(`},
		},
		{
			File:        "utils-dates.gs",
			Description: "Date and month utilities",
			Patterns:    []string{`^function (mmYYYY_|normMonthStr_|validateMonthString|getMonthDisplayName|findExistingMonthRow_|ensureMonthRow_)\(`},
		},
		{
			File:        "utils-http.gs",
			Description: "HTTP proxy and API utilities",
			Patterns:    []string{`^function (proxyIsUp_|httpProxyJson_|httpProxyPostJson_|getJsonProp_|setJsonProp_)\(`},
		},
		{
			File:        "utils-logging.gs",
			Description: "Logging and audit utilities",
			Patterns:    []string{`^function (logPaymentOperation|parseNumber)\(`},
		},
		{
			File:        "bank-revolut.gs",
			Description: "Revolut bank integration",
			Patterns:    []string{`^function (fetchRevolutSummary_|getRevolutMainBalance_|getRevolutAccounts_|getRevolutAccountBalance_|revolutTransferBetweenAccounts_|getRevolutTransactions_|fetchRevolutExpenses_|getRevolutToNestorTransfers_|consolidateRevolutUsdFunds_|revolutFxUsdToEur_|revolutMove_)\(`},
		},
		{
			File:        "bank-mercury.gs",
			Description: "Mercury bank integration",
			Patterns:    []string{`^function (fetchMercurySummary_|fetchMercuryMainBalance_|getMercuryAccounts_|getMercuryAccountBalance_|mercuryTransferToMain_|fetchMercuryExpenses_|consolidateMercuryUsdFunds_|processMercuryTransactionsForPayouts_)\(`},
		},
		{
			File:        "bank-airwallex.gs",
			Description: "Airwallex bank integration",
			Patterns:    []string{`^function (fetchAirwallexSummary_|fetchAirwallexExpenses_|testAirwallexExpenseCalculation)\(`},
		},
		{
			File:        "bank-wise.gs",
			Description: "Wise bank integration",
			Patterns:    []string{`^function fetchWiseSummary_\(`},
		},
		{
			File:        "bank-nexo.gs",
			Description: "Nexo bank integration",
			Patterns:    []string{`^function fetchNexoSummary_\(`},
		},
		{
			File:        "balances.gs",
			Description: "Balance management and updates",
			Patterns:    []string{`^function (updateBankBalance_|updateAllBalances|updateBankBalances_|checkBankMinimumBalance_|checkAllBankMinimumBalances|dryRunCheckAllBankMinimumBalances|transferFromRevolut_|fetchAllBankUsdBalances_|updateBalancesAfterInternalConsolidation_|getFinalMainAccountBalances_|adjustBalancesForPendingTransfers_)\(`},
		},
		{
			File:        "consolidation.gs",
			Description: "Fund consolidation logic",
			Patterns:    []string{`^function (intelligentConsolidationSystem_|performInternalConsolidation_|performCrossBankTopup_|consolidateUsdFundsToMain_|consolidateFundsToMain_)\(`},
		},
		{
			File:        "transfers.gs",
			Description: "Transfer tracking and reconciliation",
			Patterns:    []string{`^function (markTransferAsReceived_|autoDetectCompletedTransfers_|reconcileTransferWithSpreadsheet|detectAndReconcilePayouts_|loadProcessedPayoutTransactions_|saveProcessedPayoutTransactions_|getTransfersByBank_)\(`},
		},
		{
			File:        "payments.gs",
			Description: "User payment processing",
			Patterns:    []string{`^function (sendPaymentNotification_|checkPaymentPrerequisites|dryRunPayUsersForCurrentMonth|payUsersForCurrentMonth|dryRunPayUsersForPreviousMonth|payUsersForPreviousMonth|dryRunPayUsersForMonth|payUsersForMonth|menuDryRunSpecificMonth|menuPaySpecificMonth)\(`},
		},
		{
			File:        "payouts.gs",
			Description: "Payout detection and reconciliation",
			Patterns:    []string{`^function (calculateExpectedPayoutAmount_|listPendingPayouts|formatPendingPayoutsList)\(`},
		},
		{
			File:        "expenses.gs",
			Description: "Expense tracking and calculation",
			Patterns:    []string{`^function (calculateMonthlyExpensesTotal|calculateCurrentMonthExpensesToDate|calculateMultipleMonthsExpenses|buildMonthlyExpensesNotes_|formatMonthlyExpensesNote_|updateMonthlyExpenses|updateCurrentMonthExpenses|updateSpecificMonthExpenses|testMonthlyExpenses|calculateMonthlyExpenses_)\(`},
		},
		{
			File:        "sync.gs",
			Description: "Synchronization orchestration",
			Patterns:    []string{`^function (syncBanksData|testSyncBalancesOnly|testSyncPayoutsOnly|testSyncConsolidationOnly|testSyncExpensesOnly|testSyncDryRun|testSyncFull)\(`},
		},
		{
			File:        "notifications.gs",
			Description: "Slack and WhatsApp notifications",
			Patterns:    []string{`^function (sendSlackMessageWebhook|sendSlackMessageToken|sendDailySummaryToSlack|generateDailyWeeklySummary|generateSlackSummaryMessage|sendPaymentsReceivedNotification|getSlackWebhookUrl)\(`},
		},
		{
			File:        "snapshots.gs",
			Description: "Daily snapshot management",
			Patterns:    []string{`^function (saveDailySnapshot|loadPreviousDaySnapshot|loadSnapshotForDate|createEmptyMetrics|cloneMetrics|sanitizeMetrics|addMetrics|subtractMetrics|formatValue|clearAllSnapshotData|formatDifferenceLine|formatAccumulatedLine)\(`},
		},
		{
			File:        "dialogs.gs",
			Description: "UI dialogs and user interaction",
			Patterns:    []string{`^function (displayBalanceDialog|displayIndividualBanksDialog|displaySummaryDialog|displaySummaryResult|displayErrorDialog|displayError|showMultiLineDialog)\(`},
		},
		{
			File:        "menus.gs",
			Description: "Custom menu functions",
			Patterns:    []string{`^function (menu[A-Z]|runMenuHandler|checkIndividualBankBalances|generateBalanceSummaryForSheet|processFundedAccounts)\(`},
		},
		{
			File:        "triggers.gs",
			Description: "Time-based triggers and automation",
			Patterns:    []string{`^function TRIGGER_\w+\(`},
		},
		{
			File:        "testing.gs",
			Description: "Test functions",
			Patterns:    []string{`^function (test[A-Z]|simpleTest|debugMenuFunctions|firstTimeSetup)\(`},
		},
		{
			File:        "main.gs",
			Description: "Entry point and onOpen",
			Patterns:    []string{`^function (onOpen|setProxyToken|getCurrentMonthStatus|checkUSDBalanceThreshold)\(`},
		},
	}
}
