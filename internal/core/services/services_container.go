package services

import (
	"log/slog"

	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first: it doubles as the role resolver everything else
	// consults for permission checks.
	userService := NewUserService(repos.UserRepo, cfg.AdminIDs, cfg.ManagerIDs)
	container.User = userService

	container.Currency = NewCurrencyService(repos.CurrencyRepo, userService)
	container.Bank = NewBankService(repos.BankRepo, container.Currency, userService)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency, userService)

	dispatcher := NewNotificationService(notifier, userService, logger)
	container.Order = NewOrderService(repos.OrderRepo, userService, dispatcher)

	container.Draft = NewDraftService(
		repos.DraftStore,
		container.Currency,
		container.Bank,
		container.ExchangeRate,
		container.Order,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.BankSvcFacade         = (*BankService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
	_ portssvc.OrderSvcFacade        = (*OrderService)(nil)
	_ portssvc.DraftSvcFacade        = (*DraftService)(nil)
	_ portssvc.OrderEventDispatcher  = (*NotificationService)(nil)
)
