package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/auth"
	"github.com/jcastellanos/terralote-api/internal/application/document"
	"github.com/jcastellanos/terralote-api/internal/application/payment"
	"github.com/jcastellanos/terralote-api/internal/application/usecase"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProjectUC    *usecase.ProjectUseCase
	LotUC        *usecase.LotUseCase
	PaymentUC    *payment.UseCase
	CommissionUC *usecase.CommissionUseCase
	StatementUC  *usecase.StatementUseCase
	ReportUC     *usecase.ReportUseCase
	DocumentUC   *document.UseCase
	UserRepo     repository.UserRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadPrincipal(deps.UserRepo))

	// Users (solo admin)
	users := protected.Group("/users", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.ManageUsers }))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Projects (lectura con alcance por rol; escritura según capacidad)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Post("/", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.CreateProject }), projectHandler.Create)
	projects.Put("/:id", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.EditProject }), projectHandler.Update)
	projects.Delete("/:id", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.DeleteProject }), projectHandler.Delete)

	// Lots (lectura con alcance; transiciones según capacidad)
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	statementHandler := NewStatementHandler(deps.StatementUC, deps.ReportUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Get("/:id/statement", statementHandler.GetForLot)
	lots.Get("/:id/statement/pdf", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.DownloadPDF }), documentHandler.StatementPDF)
	lots.Post("/", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.EditProject }), lotHandler.Create)
	lots.Post("/:id/reserve", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.AssignLot }), lotHandler.Reserve)
	lots.Post("/:id/sell", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.AssignLot }), lotHandler.Sell)
	lots.Post("/:id/release", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.AssignLot }), lotHandler.Release)
	lots.Delete("/:id", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.DeleteProject }), lotHandler.Delete)

	// Payments (registro según capacidad; lectura con alcance)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.RegisterPayment }), paymentHandler.Register)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Get("/:id/receipt/pdf", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.DownloadPDF }), documentHandler.ReceiptPDF)

	// Clients (directorio para gerencia; pagos con alcance propio)
	clients := protected.Group("/clients")
	clients.Get("/", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.ViewAllClients }), userHandler.ListClients)
	clients.Get("/:id/payments", paymentHandler.ListByClient)

	// Commissions (listar con alcance; transiciones según capacidad)
	commissions := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/", commissionHandler.List)
	commissions.Get("/:id", commissionHandler.GetByID)
	commissions.Post("/:id/approve", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.ApproveCommission }), commissionHandler.Approve)
	commissions.Post("/:id/pay", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.PayCommission }), commissionHandler.Pay)
	commissions.Post("/:id/cancel", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.ApproveCommission }), commissionHandler.Cancel)

	// Reports (gerencia)
	reports := protected.Group("/reports", RequireCapability(func(cs authz.CapabilitySet) bool { return cs.ViewReports }))
	reports.Get("/executive", statementHandler.ExecutiveReport)
	reports.Get("/executive/pdf", documentHandler.ExecutiveReportPDF)
}
