package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menumapper "github.com/slicelab/pizza-store-api/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/slicelab/pizza-store-api/internal/domains/catalog/domain"
)

// MenuAPI serves the static pizza catalog.
type MenuAPI struct {
	menu *catalogdomain.Menu
}

// NewMenuAPI creates a MenuAPI backed by the provided catalog.
func NewMenuAPI(menu *catalogdomain.Menu) MenuAPI {
	return MenuAPI{menu: menu}
}

// Get /api/menu
// Returns the full catalog of pizzas, sizes, and toppings
func (api *MenuAPI) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, menumapper.FromDomainMenu(api.menu))
}
