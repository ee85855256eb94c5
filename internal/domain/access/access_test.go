package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddik-sports/ddik-api/internal/domain/access"
	"github.com/ddik-sports/ddik-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Has — tabela de capacidades
// ──────────────────────────────────────────────────────────────────────────────

func TestHas_AdminEGerenteTemTudo(t *testing.T) {
	all := []access.Capability{
		access.CapProductsManage, access.CapCatalogRead, access.CapLedgerApply,
		access.CapOrdersManage, access.CapIncidentsManage, access.CapReportsRead,
		access.CapInvitationsManage, access.CapDashboardRead,
	}
	for _, role := range []string{entity.RoleAdmin, entity.RoleGerente} {
		for _, c := range all {
			assert.True(t, access.Has(role, c), "%s deve ter %s", role, c)
		}
	}
}

func TestHas_FuncionarioSemRelatoriosNemConvites(t *testing.T) {
	assert.True(t, access.Has(entity.RoleFuncionario, access.CapProductsManage))
	assert.True(t, access.Has(entity.RoleFuncionario, access.CapLedgerApply))
	assert.True(t, access.Has(entity.RoleFuncionario, access.CapOrdersManage))
	assert.True(t, access.Has(entity.RoleFuncionario, access.CapIncidentsManage))
	assert.True(t, access.Has(entity.RoleFuncionario, access.CapDashboardRead))

	assert.False(t, access.Has(entity.RoleFuncionario, access.CapReportsRead),
		"funcionario não tem acesso a relatórios")
	assert.False(t, access.Has(entity.RoleFuncionario, access.CapInvitationsManage),
		"funcionario não emite convites")
}

func TestHas_ClienteSoCatalogo(t *testing.T) {
	assert.True(t, access.Has(entity.RoleCliente, access.CapCatalogRead))

	assert.False(t, access.Has(entity.RoleCliente, access.CapProductsManage))
	assert.False(t, access.Has(entity.RoleCliente, access.CapLedgerApply))
	assert.False(t, access.Has(entity.RoleCliente, access.CapOrdersManage))
	assert.False(t, access.Has(entity.RoleCliente, access.CapIncidentsManage))
	assert.False(t, access.Has(entity.RoleCliente, access.CapReportsRead))
	assert.False(t, access.Has(entity.RoleCliente, access.CapDashboardRead))
}

func TestHas_PapelDesconhecidoNaoTemNada(t *testing.T) {
	assert.False(t, access.Has("visitante", access.CapCatalogRead))
	assert.False(t, access.Has("", access.CapCatalogRead))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Route — decisões de navegação
// ──────────────────────────────────────────────────────────────────────────────

func TestRoute_VisitantePaginasPublicas(t *testing.T) {
	assert.True(t, access.Route("", "/auth").Allow)
	assert.True(t, access.Route("", "/register").Allow)
}

func TestRoute_VisitanteRedirecionaParaAuth(t *testing.T) {
	for _, path := range []string{"/", "/dashboard", "/products", "/catalogo", "/reports"} {
		d := access.Route("", path)
		assert.False(t, d.Allow, "visitante não abre %s", path)
		assert.Equal(t, "/auth", d.RedirectTo)
	}
}

func TestRoute_ClienteReportsRedirecionaParaCatalogo(t *testing.T) {
	d := access.Route(entity.RoleCliente, "/reports")
	assert.False(t, d.Allow)
	assert.Equal(t, "/catalogo", d.RedirectTo,
		"cliente barrado deve ir para a própria home, não para /auth")
}

func TestRoute_FuncionarioReportsRedirecionaParaDashboard(t *testing.T) {
	d := access.Route(entity.RoleFuncionario, "/reports")
	assert.False(t, d.Allow)
	assert.Equal(t, "/dashboard", d.RedirectTo)
}

func TestRoute_StaffAbreDashboard(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleGerente, entity.RoleFuncionario} {
		assert.True(t, access.Route(role, "/dashboard").Allow, "%s abre /dashboard", role)
	}
}

func TestRoute_ClienteAbreCatalogo(t *testing.T) {
	assert.True(t, access.Route(entity.RoleCliente, "/catalogo").Allow)
}

func TestRoute_ClienteDashboardRedireciona(t *testing.T) {
	d := access.Route(entity.RoleCliente, "/dashboard")
	assert.False(t, d.Allow)
	assert.Equal(t, "/catalogo", d.RedirectTo)
}

func TestRoute_RaizExigeApenasSessao(t *testing.T) {
	assert.True(t, access.Route(entity.RoleCliente, "/").Allow)
	assert.True(t, access.Route(entity.RoleAdmin, "/").Allow)
	assert.False(t, access.Route("", "/").Allow)
}

func TestRoute_InventoryAliasDeProducts(t *testing.T) {
	assert.True(t, access.Route(entity.RoleFuncionario, "/inventory").Allow)
	assert.False(t, access.Route(entity.RoleCliente, "/inventory").Allow)
}

func TestRoute_RotaDesconhecidaPassaComSessao(t *testing.T) {
	assert.True(t, access.Route(entity.RoleCliente, "/pagina-inexistente").Allow)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests HomePath
// ──────────────────────────────────────────────────────────────────────────────

func TestHomePath(t *testing.T) {
	assert.Equal(t, "/catalogo", access.HomePath(entity.RoleCliente))
	assert.Equal(t, "/dashboard", access.HomePath(entity.RoleAdmin))
	assert.Equal(t, "/dashboard", access.HomePath(entity.RoleGerente))
	assert.Equal(t, "/dashboard", access.HomePath(entity.RoleFuncionario))
	assert.Equal(t, "/auth", access.HomePath(""))
}
