package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/cart"
	cartHTTP "chat-commerce/internal/cart/delivery/http"
	cartRepo "chat-commerce/internal/cart/repository/postgre"
	cartUC "chat-commerce/internal/cart/usecase"
	"chat-commerce/internal/catalog"
	catalogHTTP "chat-commerce/internal/catalog/delivery/http"
	catalogRepo "chat-commerce/internal/catalog/repository/postgre"
	catalogUC "chat-commerce/internal/catalog/usecase"
	chatHTTP "chat-commerce/internal/chat/delivery/http"
	chatUC "chat-commerce/internal/chat/usecase"
	"chat-commerce/internal/order"
	orderHTTP "chat-commerce/internal/order/delivery/http"
	orderRepo "chat-commerce/internal/order/repository/postgre"
	orderUC "chat-commerce/internal/order/usecase"
	"chat-commerce/internal/payment"
	paymentHTTP "chat-commerce/internal/payment/delivery/http"
	paymentRepo "chat-commerce/internal/payment/repository/postgre"
	paymentUC "chat-commerce/internal/payment/usecase"
	"chat-commerce/internal/user"
	userHTTP "chat-commerce/internal/user/delivery/http"
	userRepo "chat-commerce/internal/user/repository/postgre"
	userUC "chat-commerce/internal/user/usecase"
)

// domains holds the use cases shared between the REST handlers and the chat
// orchestrator, so both surfaces act on the same state.
type domains struct {
	user    user.UseCase
	catalog catalog.UseCase
	cart    cart.UseCase
	order   order.UseCase
	payment payment.UseCase
}

// newDomains builds repositories and use cases bottom-up.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, ..., srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) newDomains() domains {
	var d domains

	d.user = userUC.New(userRepo.New(srv.postgresDB, srv.l), srv.tokens, srv.l)
	d.catalog = catalogUC.New(catalogRepo.New(srv.postgresDB, srv.l), srv.l)
	d.cart = cartUC.New(cartRepo.New(srv.postgresDB, srv.l), d.catalog, srv.l)
	d.order = orderUC.New(orderRepo.New(srv.postgresDB, srv.l), d.cart, srv.publisher, srv.currency, srv.l)
	d.payment = paymentUC.New(
		paymentRepo.New(srv.postgresDB, srv.l),
		d.order,
		srv.razorpay,
		srv.publisher,
		paymentUC.Config{Currency: srv.currency, WebhookSecret: srv.webhookSecret},
		srv.l,
	)

	return d
}

// setupUserDomain registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	userHTTP.RegisterRoutes(api.Group("/auth"), userHTTP.New(srv.l, d.user), srv.mw)
	srv.l.Infof(ctx, "User domain registered")
}

// setupCatalogDomain registers /api/v1/products.
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	catalogHTTP.RegisterRoutes(api.Group("/products"), catalogHTTP.New(srv.l, d.catalog))
	srv.l.Infof(ctx, "Catalog domain registered")
}

// setupCartDomain registers /api/v1/cart.
func (srv HTTPServer) setupCartDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	cartHTTP.RegisterRoutes(api.Group("/cart"), cartHTTP.New(srv.l, d.cart), srv.mw)
	srv.l.Infof(ctx, "Cart domain registered")
}

// setupOrderDomain registers /api/v1/orders.
func (srv HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	orderHTTP.RegisterRoutes(api.Group("/orders"), orderHTTP.New(srv.l, d.order), srv.mw)
	srv.l.Infof(ctx, "Order domain registered")
}

// setupPaymentDomain registers /api/v1/payments.
func (srv HTTPServer) setupPaymentDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	h := paymentHTTP.New(srv.l, d.payment, srv.webhookRateLimitPerMin)
	paymentHTTP.RegisterRoutes(api.Group("/payments"), h, srv.mw)

	if srv.razorpay == nil {
		srv.l.Warnf(ctx, "Razorpay keys not configured, checkout will be rejected")
	}
	srv.l.Infof(ctx, "Payment domain registered")
}

// setupChatDomain registers /api/v1/chat on top of the other use cases.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, d domains) {
	uc := chatUC.New(srv.l, srv.classifier, d.catalog, d.cart, d.order, d.payment)
	chatHTTP.RegisterRoutes(api.Group("/chat"), chatHTTP.New(srv.l, uc), srv.mw)
	srv.l.Infof(ctx, "Chat domain registered")
}
