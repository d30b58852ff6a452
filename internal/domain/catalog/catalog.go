// Package catalog holds the static benefit catalog offered to citizens.
package catalog

import "beneficios_inss/internal/domain/entities"

var benefits = []entities.Benefit{
	{
		ID:          "aposentadoria-idade",
		Title:       "Aposentadoria por Idade",
		Category:    "Aposentadorias",
		Description: "Benefício para trabalhadores que atingem a idade mínima e tempo de contribuição.",
		Requirements: []string{
			"Idade mínima: 65 anos (homens) ou 62 anos (mulheres)",
			"Tempo de contribuição: 15 anos",
			"Carência de 180 contribuições mensais",
		},
	},
	{
		ID:          "auxilio-doenca",
		Title:       "Auxílio por Incapacidade Temporária",
		Category:    "Auxílios",
		Description: "Benefício para segurados que ficam temporariamente incapacitados para o trabalho por motivo de doença ou acidente.",
		Requirements: []string{
			"Incapacidade temporária para o trabalho",
			"Qualidade de segurado do INSS",
			"Carência de 12 contribuições mensais (exceto para acidentes)",
		},
	},
	{
		ID:          "salario-maternidade",
		Title:       "Salário-Maternidade",
		Category:    "Salários",
		Description: "Benefício para pessoas que se afastam do trabalho por motivo de nascimento de filho, adoção ou guarda judicial.",
		Requirements: []string{
			"Qualidade de segurado",
			"Carência variável conforme o tipo de segurado",
		},
	},
	{
		ID:          "pensao-morte",
		Title:       "Pensão por Morte",
		Category:    "Pensões",
		Description: "Benefício pago aos dependentes do segurado do INSS que falece.",
		Requirements: []string{
			"Óbito do segurado",
			"Qualidade de segurado do falecido na data do óbito",
			"Qualidade de dependente",
		},
	},
}

// All returns a copy of the catalog in display order.
func All() []entities.Benefit {
	out := make([]entities.Benefit, len(benefits))
	copy(out, benefits)
	return out
}

// Lookup resolves a benefit by id.
func Lookup(id string) (entities.Benefit, bool) {
	for _, b := range benefits {
		if b.ID == id {
			return b, true
		}
	}
	return entities.Benefit{}, false
}
