// Package pgc holds the PGC-AO chart-of-accounts reference data and the
// mapper that assigns line items to accounts. The account table, keyword
// dictionaries and type defaults are static data versioned with the engine;
// nothing here is runtime-mutable.
package pgc

// Account is one immutable entry of the chart of accounts.
type Account struct {
	Code string
	Name string
}

// ClassDigit returns the leading class digit of the account code.
func (a Account) ClassDigit() string {
	if a.Code == "" {
		return ""
	}
	return a.Code[:1]
}

// Account codes referenced by the mapping rules.
const (
	AccountRawMaterials   = "611"
	AccountThirdPartySvc  = "622"
	AccountUtilities      = "6221"
	AccountTransport      = "6223"
	AccountPayroll        = "632"
	AccountSocialCharges  = "635"
	AccountDepreciation   = "641"
	AccountOtherCosts     = "658"
	AccountSales          = "71"
	AccountServiceRevenue = "72"
	AccountOtherRevenue   = "757"
)

// accounts is the chart-of-accounts extract the mapper can produce,
// organized class → group → account.
var accounts = []Account{
	{Code: AccountRawMaterials, Name: "Matérias-primas e subsidiárias"},
	{Code: AccountThirdPartySvc, Name: "Fornecimentos e serviços de terceiros"},
	{Code: AccountUtilities, Name: "Electricidade e água"},
	{Code: AccountTransport, Name: "Deslocações, estadas e transportes"},
	{Code: AccountPayroll, Name: "Remunerações do pessoal"},
	{Code: AccountSocialCharges, Name: "Encargos sobre remunerações"},
	{Code: AccountDepreciation, Name: "Amortizações do exercício"},
	{Code: AccountOtherCosts, Name: "Outros custos e perdas operacionais"},
	{Code: AccountSales, Name: "Vendas"},
	{Code: AccountServiceRevenue, Name: "Prestações de serviços"},
	{Code: AccountOtherRevenue, Name: "Outros proveitos operacionais"},
}

// classNames labels the PGC-AO top-level classes for reporting.
var classNames = map[string]string{
	"1": "Meios fixos e investimentos",
	"2": "Existências",
	"3": "Terceiros",
	"4": "Meios monetários",
	"5": "Capital e reservas",
	"6": "Custos e perdas",
	"7": "Proveitos e ganhos",
	"8": "Resultados",
}

// AccountByCode looks up an account entry. The second return is false for
// codes outside the mapper's extract.
func AccountByCode(code string) (Account, bool) {
	for _, account := range accounts {
		if account.Code == code {
			return account, true
		}
	}
	return Account{}, false
}

// ClassName returns the display name of a PGC-AO class digit.
func ClassName(classDigit string) string {
	if name, ok := classNames[classDigit]; ok {
		return name
	}
	return "Classe " + classDigit
}

// Accounts returns a copy of the chart-of-accounts extract in declaration
// order.
func Accounts() []Account {
	out := make([]Account, len(accounts))
	copy(out, accounts)
	return out
}
