package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/slicelab/pizza-store-api/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/slicelab/pizza-store-api/internal/domains/cart/ports"
)

// CartAPI wires HTTP transport with the cart bounded context service.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// addCartItemRequest is the payload for adding a pizza to the cart.
type addCartItemRequest struct {
	PizzaID  int64    `json:"pizzaId"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
	Quantity int      `json:"quantity"`
}

// updateCartItemRequest carries the new quantity for a line item.
type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get /api/cart
// Returns the session cart with its checkout summary
func (api *CartAPI) GetCart(c *gin.Context) {
	view, err := api.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}

// Post /api/cart/items
// Adds a pizza to the cart, merging with an identical line if present
func (api *CartAPI) AddCartItem(c *gin.Context) {
	var payload addCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	session := sessionID(c)
	input := cartports.AddItemInput{
		SessionID: session,
		PizzaID:   payload.PizzaID,
		Size:      payload.Size,
		Toppings:  payload.Toppings,
		Quantity:  payload.Quantity,
	}
	if _, err := api.service.AddItem(c.Request.Context(), input); err != nil {
		respondCartServiceError(c, err)
		return
	}
	view, err := api.service.View(c.Request.Context(), session)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cartmapper.FromView(view))
}

// Patch /api/cart/items/:itemId
// Sets a line item quantity; zero or below removes the line
func (api *CartAPI) UpdateCartItem(c *gin.Context) {
	var payload updateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	session := sessionID(c)
	if err := api.service.SetQuantity(c.Request.Context(), session, c.Param("itemId"), payload.Quantity); err != nil {
		respondCartServiceError(c, err)
		return
	}
	api.respondView(c, session)
}

// Delete /api/cart/items/:itemId
// Removes a line item; unknown identifiers are ignored
func (api *CartAPI) DeleteCartItem(c *gin.Context) {
	session := sessionID(c)
	if err := api.service.RemoveItem(c.Request.Context(), session, c.Param("itemId")); err != nil {
		respondCartServiceError(c, err)
		return
	}
	api.respondView(c, session)
}

// Delete /api/cart
// Empties the session cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	session := sessionID(c)
	if err := api.service.Clear(c.Request.Context(), session); err != nil {
		respondCartServiceError(c, err)
		return
	}
	api.respondView(c, session)
}

func (api *CartAPI) respondView(c *gin.Context, session string) {
	view, err := api.service.View(c.Request.Context(), session)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}
