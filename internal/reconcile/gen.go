package reconcile

//go:generate mockgen -source interfaces.go -destination mocks/reconcile.go -package mocks
