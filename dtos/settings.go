package dtos

type AppSettings struct {
	VatPercentage string  `json:"vat_percentage"`
	FinancialYear *string `json:"financial_year"`
}

type VatSetting struct {
	VatPercentage string  `json:"vat_percentage"`
	Description   *string `json:"description"`
}

type FinancialYearSetting struct {
	FinancialYear string  `json:"financial_year"`
	Description   *string `json:"description"`
}
