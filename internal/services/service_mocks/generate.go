package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// This file contains the go:generate directive to regenerate the service
// interface mocks after changing internal/services/interfaces.go.
