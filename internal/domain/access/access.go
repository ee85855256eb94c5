// Package access concentra a autorização por papel em uma única tabela
// declarativa de capacidades. Tanto a navegação (qual página cada papel pode
// abrir, e para onde redirecionar quando não pode) quanto o middleware HTTP
// consultam a mesma tabela, evitando as listas de rotas duplicadas por papel
// que existiam antes.
package access

import "github.com/ddik-sports/ddik-api/internal/domain/entity"

// Capability é uma ação sobre um recurso que um papel pode exercer.
type Capability string

// Capacidades do sistema.
const (
	CapProductsManage    Capability = "products.manage"
	CapCatalogRead       Capability = "catalog.read"
	CapLedgerApply       Capability = "ledger.apply"
	CapOrdersManage      Capability = "orders.manage"
	CapIncidentsManage   Capability = "incidents.manage"
	CapReportsRead       Capability = "reports.read"
	CapInvitationsManage Capability = "invitations.manage"
	CapDashboardRead     Capability = "dashboard.read"
)

// grants: papel → conjunto de capacidades. Única fonte de verdade.
var grants = map[string]map[Capability]bool{
	entity.RoleAdmin: {
		CapProductsManage: true, CapCatalogRead: true, CapLedgerApply: true,
		CapOrdersManage: true, CapIncidentsManage: true, CapReportsRead: true,
		CapInvitationsManage: true, CapDashboardRead: true,
	},
	entity.RoleGerente: {
		CapProductsManage: true, CapCatalogRead: true, CapLedgerApply: true,
		CapOrdersManage: true, CapIncidentsManage: true, CapReportsRead: true,
		CapInvitationsManage: true, CapDashboardRead: true,
	},
	entity.RoleFuncionario: {
		CapProductsManage: true, CapCatalogRead: true, CapLedgerApply: true,
		CapOrdersManage: true, CapIncidentsManage: true, CapDashboardRead: true,
	},
	entity.RoleCliente: {
		CapCatalogRead: true,
	},
}

// Has informa se o papel possui a capacidade.
func Has(role string, c Capability) bool {
	return grants[role][c]
}

// páginas navegáveis → capacidade exigida. Páginas fora da tabela não são
// controladas aqui (o cliente mostra o 404 próprio).
var pageCapability = map[string]Capability{
	"/dashboard": CapDashboardRead,
	"/products":  CapProductsManage,
	"/inventory": CapProductsManage, // alias de /products
	"/orders":    CapOrdersManage,
	"/incidents": CapIncidentsManage,
	"/reports":   CapReportsRead,
	"/catalogo":  CapCatalogRead,
}

// páginas públicas, acessíveis sem sessão.
var publicPages = map[string]bool{
	"/auth":     true,
	"/register": true,
}

// Decision é o resultado da avaliação de navegação: ou a página é permitida,
// ou o chamador deve redirecionar para RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// HomePath devolve a página inicial do papel, usada como destino de
// redirecionamento quando o acesso é negado.
func HomePath(role string) string {
	switch role {
	case entity.RoleCliente:
		return "/catalogo"
	case entity.RoleAdmin, entity.RoleGerente, entity.RoleFuncionario:
		return "/dashboard"
	default:
		return "/auth"
	}
}

// Route avalia se o papel pode abrir a página. Papel vazio representa
// visitante sem sessão: só páginas públicas são permitidas, o resto
// redireciona para /auth. A raiz "/" (menu por papel) exige apenas sessão.
func Route(role, path string) Decision {
	if publicPages[path] {
		return Decision{Allow: true}
	}
	if role == "" {
		return Decision{RedirectTo: "/auth"}
	}
	if path == "/" {
		return Decision{Allow: true}
	}
	required, known := pageCapability[path]
	if !known {
		// rota desconhecida: deixa passar, o catch-all do cliente resolve
		return Decision{Allow: true}
	}
	if Has(role, required) {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: HomePath(role)}
}
