package i18n

// Message keys shared across roles
const (
	KeyYes = "default.yes"
	KeyNo  = "default.no"
)

// Client contract form keys
const (
	KeyContractDuplicated          = "client.contract.form.error.duplicated"
	KeyContractNegativeAmount      = "client.contract.form.error.negative-amount"
	KeyContractCurrencyNotAccepted = "client.contract.form.error.currency-not-accepted"
	KeyContractInvalidProject      = "client.contract.form.error.invalid-project"
)

// Developer training module form keys
const (
	KeyTrainingModuleDuplicated        = "developer.training-module.form.error.duplicated"
	KeyTrainingModuleUpdateDateInvalid = "developer.training-module.form.error.update-date-not-valid"
	KeyTrainingModuleInvalidProject    = "developer.training-module.form.error.invalid-project"
)

// Sponsor invoice form keys
const (
	KeyInvoiceDuplicated          = "sponsor.invoice.form.error.duplicated"
	KeyInvoiceDueDateTooSoon      = "sponsor.invoice.form.error.due-date-too-soon"
	KeyInvoiceNegativeQuantity    = "sponsor.invoice.form.error.negative-quantity"
	KeyInvoiceCurrencyNotAccepted = "sponsor.invoice.form.error.currency-not-accepted"
)

// Sponsor sponsorship form keys
const (
	KeySponsorshipNegativeAmount      = "sponsor.sponsorship.form.error.negative-amount"
	KeySponsorshipCurrencyNotAccepted = "sponsor.sponsorship.form.error.currency-not-accepted"
)

// Administrator system configuration form keys
const (
	KeySystemCurrencyNotAccepted = "administrator.system-configuration.form.error.system-currency"
	KeyCurrencyCodeInvalid       = "administrator.system-configuration.form.error.currency-code"
)

// Labels printed on invoice documents
const (
	KeyPrintInvoiceTitle       = "printing.invoice.title"
	KeyPrintInvoiceSponsorship = "printing.invoice.sponsorship"
	KeyPrintInvoiceRegistered  = "printing.invoice.registration-time"
	KeyPrintInvoiceDueDate     = "printing.invoice.due-date"
	KeyPrintInvoiceQuantity    = "printing.invoice.quantity"
	KeyPrintInvoiceTax         = "printing.invoice.tax"
	KeyPrintInvoiceTotal       = "printing.invoice.total"
	KeyPrintInvoiceDraft       = "printing.invoice.draft"
)

// Keys for binding failures reported by the validator
const (
	KeyRequired = "default.form.error.required"
	KeyTooLong  = "default.form.error.too-long"
	KeyTooShort = "default.form.error.too-short"
	KeyPattern  = "default.form.error.pattern"
	KeyURL      = "default.form.error.url"
	KeyEmail    = "default.form.error.email"
	KeyRange    = "default.form.error.range"
	KeyCurrency = "default.form.error.currency"
	KeyPast     = "default.form.error.past"
	KeyInvalid  = "default.form.error.invalid"
	KeyScale    = "default.form.error.scale"
)

type translation struct {
	en string
	es string
}

var translations = map[string]translation{
	KeyYes: {"Yes", "Sí"},
	KeyNo:  {"No", "No"},

	KeyContractDuplicated:          {"This code is already used by another contract", "Este código ya lo usa otro contrato"},
	KeyContractNegativeAmount:      {"The budget must be greater than zero", "El presupuesto debe ser mayor que cero"},
	KeyContractCurrencyNotAccepted: {"The currency is not accepted by the system", "La moneda no está aceptada por el sistema"},
	KeyContractInvalidProject:      {"Select an existing project", "Seleccione un proyecto existente"},

	KeyTrainingModuleDuplicated:        {"This code is already used by another training module", "Este código ya lo usa otro módulo de formación"},
	KeyTrainingModuleUpdateDateInvalid: {"The update moment must be after the creation moment", "El momento de actualización debe ser posterior al de creación"},
	KeyTrainingModuleInvalidProject:    {"Select an existing project", "Seleccione un proyecto existente"},

	KeyInvoiceDuplicated:          {"This code is already used by another invoice", "Este código ya lo usa otra factura"},
	KeyInvoiceDueDateTooSoon:      {"The due date must be at least one month after registration", "La fecha de vencimiento debe ser al menos un mes posterior al registro"},
	KeyInvoiceNegativeQuantity:    {"The quantity must be greater than zero", "La cantidad debe ser mayor que cero"},
	KeyInvoiceCurrencyNotAccepted: {"The currency is not accepted by the system", "La moneda no está aceptada por el sistema"},

	KeySponsorshipNegativeAmount:      {"The amount must be greater than zero", "El importe debe ser mayor que cero"},
	KeySponsorshipCurrencyNotAccepted: {"The currency is not accepted by the system", "La moneda no está aceptada por el sistema"},

	KeySystemCurrencyNotAccepted: {"The system currency must be one of the accepted currencies", "La moneda del sistema debe estar entre las aceptadas"},
	KeyCurrencyCodeInvalid:       {"Currencies must be three upper-case letters", "Las monedas deben ser tres letras mayúsculas"},

	KeyPrintInvoiceTitle:       {"Invoice", "Factura"},
	KeyPrintInvoiceSponsorship: {"Sponsorship", "Patrocinio"},
	KeyPrintInvoiceRegistered:  {"Registered", "Registrada"},
	KeyPrintInvoiceDueDate:     {"Due date", "Vencimiento"},
	KeyPrintInvoiceQuantity:    {"Quantity", "Cantidad"},
	KeyPrintInvoiceTax:         {"Tax", "Impuesto"},
	KeyPrintInvoiceTotal:       {"Total", "Total"},
	KeyPrintInvoiceDraft:       {"Draft", "Borrador"},

	KeyRequired: {"This field is required", "Este campo es obligatorio"},
	KeyTooLong:  {"The value is too long", "El valor es demasiado largo"},
	KeyTooShort: {"The value is too short", "El valor es demasiado corto"},
	KeyPattern:  {"The value does not have the expected format", "El valor no tiene el formato esperado"},
	KeyURL:      {"The value must be a valid URL", "El valor debe ser una URL válida"},
	KeyEmail:    {"The value must be a valid email", "El valor debe ser un email válido"},
	KeyRange:    {"The value is out of range", "El valor está fuera de rango"},
	KeyCurrency: {"The value must be a currency code", "El valor debe ser un código de moneda"},
	KeyPast:     {"The moment must be in the past", "El momento debe estar en el pasado"},
	KeyInvalid:  {"The value is not valid", "El valor no es válido"},
	KeyScale:    {"Amounts can have at most two decimal places", "Los importes admiten como máximo dos decimales"},
}
