package mergebot

//go:generate mockgen -source interfaces.go -destination mocks/mergebot.go -package mocks
