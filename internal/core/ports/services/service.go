package services

// ServiceContainer aggregates the service facades handed to route registration.
type ServiceContainer struct {
	Currency CurrencySvcFacade
	Note     NoteSvcFacade
	History  HistorySvcFacade
	Auth     AuthSvcFacade
}
