package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeCommandEmpty:          "Linha de comando vazia",
		CodeCommandUnknownVerb:    "Verbo de comando desconhecido {{.Verb}}",
		CodeCommandMalformed:      "Comando malformado: {{.Reason}}",
		CodeCommandUnknownType:    "Tipo de comando {{.Type}} não registrado",
		CodeCommandPayloadInvalid: "Payload do comando {{.Type}} é inválido",
		CodeCommandCountInvalid:   "Quantidade de comandos {{.Value}} não é um número",
		CodeCommandCountRange:     "Quantidade de comandos {{.Value}} deve estar entre {{.Min}} e {{.Max}}",

		CodeCharacterNotFound:      "Personagem {{.Name}} não está na cidade",
		CodeCharacterInvalidClass:  "Classe de personagem desconhecida {{.Class}}",
		CodeCharacterAlreadyExists: "Personagem {{.Name}} já existe",
		CodeCharacterNameReserved:  "O nome {{.Name}} é reservado",
		CodeCharacterInvalidHP:     "Personagem {{.Name}} precisa de pontos de vida positivos, recebeu {{.HP}}",
		CodeCharacterCannotAttack:  "Um {{.Class}} não pode atacar",
		CodeCharacterCannotCast:    "Um {{.Class}} não pode lançar feitiços",

		CodeItemInvalidKind:     "Tipo de item desconhecido {{.Kind}}",
		CodeItemSlotUnsupported: "Um {{.Class}} não pode carregar itens do tipo {{.Kind}}",
		CodeItemNotOwned:        "{{.Name}} não possui {{.Kind}} chamado {{.Item}}",
		CodeContainerFull:       "{{.Name}} não pode carregar mais de {{.Capacity}} itens do tipo {{.Kind}}",
		CodeSpellTargetDenied:   "Feitiço {{.Item}} não pode ter {{.Target}} como alvo",
	},
}
