package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the HTTP handlers and the terminal calculator.
type ServiceContainer struct {
	Currency CurrencySvc
	Quote    QuoteSvcFacade
}
