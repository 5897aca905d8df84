package pgc

import "gestfin/pgc-engine/internal/models"

// accountKeywords associates one account with the keyword fragments that
// identify it in a line-item description. Keywords are written lower-case
// and without diacritics; descriptions are normalized the same way before
// matching, so "Salário" hits "salario".
type accountKeywords struct {
	Code     string
	Keywords []string
}

// keywordDictionary is scanned in declaration order and the first match
// wins, so more specific accounts come first. There is no scoring among
// multiple hits.
var keywordDictionary = []accountKeywords{
	{Code: AccountSocialCharges, Keywords: []string{
		"inss", "seguranca social", "contribuicao", "encargos sociais",
	}},
	{Code: AccountPayroll, Keywords: []string{
		"salario", "ordenado", "remuneracao", "vencimento", "subsidio de ferias",
	}},
	{Code: AccountRawMaterials, Keywords: []string{
		"materia-prima", "materias-primas", "sementes", "adubos",
		"fertilizante", "insumos", "materiais",
	}},
	{Code: AccountUtilities, Keywords: []string{
		"electricidade", "eletricidade", "agua", "energia electrica", "saneamento",
	}},
	{Code: AccountTransport, Keywords: []string{
		"transporte", "combustivel", "deslocacao", "deslocacoes", "viagem", "frete",
	}},
	{Code: AccountThirdPartySvc, Keywords: []string{
		"servico", "servicos", "consultoria", "manutencao", "aluguer",
		"renda", "comunicacao", "honorarios",
	}},
	{Code: AccountServiceRevenue, Keywords: []string{
		"prestacao de servicos", "prestacoes de servicos",
	}},
	{Code: AccountSales, Keywords: []string{
		"venda", "vendas", "facturacao",
	}},
}

// typeDefault is the baseline account for a declared line-item type.
type typeDefault struct {
	Code       string
	Confidence int
}

// typeDefaults maps every declared type except asset (which has its own
// definitional rule) to a baseline account. Material sits deliberately
// below the keyword-fallback threshold: a bare "material" declaration is a
// weak signal that keyword evidence should refine.
var typeDefaults = map[models.ItemType]typeDefault{
	models.ItemTypeMaterial:  {Code: AccountRawMaterials, Confidence: 65},
	models.ItemTypeService:   {Code: AccountThirdPartySvc, Confidence: 75},
	models.ItemTypePersonnel: {Code: AccountPayroll, Confidence: 90},
	models.ItemTypeFixed:     {Code: AccountThirdPartySvc, Confidence: 75},
	models.ItemTypeRevenue:   {Code: AccountSales, Confidence: 70},
}

// Refinement term lists, matched against normalized descriptions.
var (
	socialSecurityTerms = []string{"inss", "seguranca social", "contribuicao", "encargos sociais"}
	utilityTerms        = []string{"electricidade", "eletricidade", "agua", "energia", "luz"}
	transportTerms      = []string{"transporte", "combustivel", "deslocacao", "viagem"}
)
