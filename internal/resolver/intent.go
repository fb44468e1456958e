package resolver

// Intent tells which kind of answer a question asks for. Flags are not exclusive.
type Intent struct {
	Count    bool
	List     bool
	Value    bool
	Location bool
	Status   bool
	Warranty bool
	Vendor   bool
	Ports    bool
}

var intentRules = []rule[Intent]{
	{
		name:   "count",
		when:   anyOf("quantos", "quantas", "contagem", "número", "qtd", "total", "how many", "count"),
		effect: func(i *Intent) { i.Count = true },
	},
	{
		name:   "list",
		when:   anyOf("mostre", "liste", "exiba", "mostrar", "listar", "show", "list", "display"),
		effect: func(i *Intent) { i.List = true },
	},
	{
		name:   "value",
		when:   anyOf("valor", "preço", "custo", "investimento", "dinheiro", "value", "price", "cost", "investment"),
		effect: func(i *Intent) { i.Value = true },
	},
	{
		name:   "location",
		when:   anyOf("sede", "filial", "matriz", "local", "onde", "headquarters", "branch", "where"),
		effect: func(i *Intent) { i.Location = true },
	},
	{
		name:   "status",
		when:   anyOf("ativo", "inativo", "manutenção", "funcionando", "parado", "active", "maintenance", "running", "stopped"),
		effect: func(i *Intent) { i.Status = true },
	},
	{
		name:   "warranty",
		when:   anyOf("garantia", "vencimento", "vencer", "validade", "warranty", "expiration", "expiring"),
		effect: func(i *Intent) { i.Warranty = true },
	},
	{
		name:   "vendor",
		when:   anyOf("cisco", "hp", "dlink", "d-link", "tp-link", "mikrotik", "juniper", "huawei", "fabricante", "vendor"),
		effect: func(i *Intent) { i.Vendor = true },
	},
	{
		name:   "ports",
		when:   anyOf("portas", "ports", "conexões", "livres", "ocupadas", "free", "available"),
		effect: func(i *Intent) { i.Ports = true },
	},
}

// ExtractIntent flags every intent whose keywords appear in the question.
func ExtractIntent(raw string) Intent {
	var intent Intent
	allMatch(intentRules, newQuestion(raw), &intent)
	return intent
}
