package routes

import (
	"pata_amiga/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCarts    = "/carts"
	PathShipping = "/shipping"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
)

func addStorefrontRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, shippingHandler *handlers.ShippingHandler, checkoutHandler *handlers.CheckoutHandler, orderHandler *handlers.OrderHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.GET("/:session_id", cartHandler.GetCart)
		carts.POST("/:session_id/items", cartHandler.AddItem)
		carts.PATCH("/:session_id/items/:product_id", cartHandler.SetQuantity)
		carts.DELETE("/:session_id/items/:product_id", cartHandler.RemoveItem)
	}

	shipping := rg.Group(PathShipping)
	{
		shipping.GET("/:postal_code", shippingHandler.ResolvePostalCode)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("/:session_id", checkoutHandler.GetState)
		checkout.POST("/:session_id/submit", checkoutHandler.Submit)
		// Widget credential callback: the card form lands here.
		checkout.POST("/:session_id/card", checkoutHandler.SubmitCardForm)
		checkout.POST("/:session_id/cancel", checkoutHandler.Cancel)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
