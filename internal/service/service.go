package service

import (
	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/store"
)

type Service struct {
	Wallet   *WalletService
	Convert  *ConvertService
	Transfer *TransferService
	Card     *CardService
	Pin      Verifier
}

func NewService(repo store.Repository, cfg *config.Config, ids ident.Generator) *Service {
	return &Service{
		Wallet:   NewWalletService(repo),
		Convert:  NewConvertService(repo, ids),
		Transfer: NewTransferService(repo, ids),
		Card:     NewCardService(repo, cfg, ids),
		Pin:      NewConfigVerifier(cfg),
	}
}
