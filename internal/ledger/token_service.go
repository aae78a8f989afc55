package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var ErrInvalidTransfer error = errors.New("invalid transfer request")

const defaultConfirmTimeout = 60 * time.Second

// TokenService submits SPL token transfers signed by a fee payer.
type TokenService struct {
	logs    *zap.SugaredLogger
	client  RPCClient
	watcher SignatureWatcher
	opts    Options
}

func NewTokenService(logger *zap.SugaredLogger, client RPCClient, watcher SignatureWatcher, opts Options) *TokenService {
	if opts.TokenProgram.IsZero() {
		opts.TokenProgram = Token2022ProgramID
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = defaultConfirmTimeout
	}

	return &TokenService{
		logs:    logger,
		client:  client,
		watcher: watcher,
		opts:    opts,
	}
}

// Transfer creates the recipient's associated token account if needed and
// moves the tokens in the same transaction, then waits for confirmed
// commitment. It returns the transaction signature.
// A failed or unconfirmed submission is never retried here.
func (s *TokenService) Transfer(ctx context.Context, req TransferRequest) (string, error) {
	if len(req.FeePayer) == 0 {
		return "", fmt.Errorf("%w: fee payer is empty", ErrInvalidTransfer)
	}
	if req.Mint.IsZero() {
		return "", fmt.Errorf("%w: mint is empty", ErrInvalidTransfer)
	}
	if req.Recipient.IsZero() {
		return "", fmt.Errorf("%w: recipient is empty", ErrInvalidTransfer)
	}

	tx, err := s.buildTransaction(ctx, req)
	if err != nil {
		return "", err
	}

	signature, err := s.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       s.opts.SkipPreflight,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transfer submitted",
		"signature", signature.String(),
		"recipient", req.Recipient.String(),
		"amount", req.Amount)

	confirmCtx, cancel := context.WithTimeout(ctx, s.opts.ConfirmTimeout)
	defer cancel()

	if err := s.watcher.WaitConfirmed(confirmCtx, signature); err != nil {
		return "", fmt.Errorf("confirm transaction %s: %w", signature, err)
	}

	s.logs.Infow("transfer confirmed", "signature", signature.String())

	return signature.String(), nil
}

func (s *TokenService) buildTransaction(ctx context.Context, req TransferRequest) (*solana.Transaction, error) {
	feePayer := req.FeePayer.PublicKey()

	source, err := FindAssociatedTokenAddress(feePayer, req.Mint, s.opts.TokenProgram)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}

	destination, err := FindAssociatedTokenAddress(req.Recipient, req.Mint, s.opts.TokenProgram)
	if err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}

	createAccount := NewCreateIdempotentInstruction(feePayer, destination, req.Recipient, req.Mint, s.opts.TokenProgram)

	transfer, err := s.transferCheckedInstruction(req, source, destination, feePayer)
	if err != nil {
		return nil, err
	}

	latest, err := s.client.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get latest blockhash: %w", err)
	}
	if latest == nil || latest.Value == nil {
		return nil, errors.New("get latest blockhash: empty response")
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{createAccount, transfer},
		latest.Value.Blockhash,
		solana.TransactionPayer(feePayer),
	)
	if err != nil {
		return nil, fmt.Errorf("new transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(feePayer) {
			return &req.FeePayer
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return tx, nil
}

// transferCheckedInstruction encodes TransferChecked with the token program
// bindings and points it at the configured program, which may be Token-2022.
func (s *TokenService) transferCheckedInstruction(req TransferRequest, source, destination, authority solana.PublicKey) (solana.Instruction, error) {
	ix, err := token.NewTransferCheckedInstruction(
		req.Amount,
		req.Decimals,
		source,
		req.Mint,
		destination,
		authority,
		[]solana.PublicKey{},
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("build transfer instruction: %w", err)
	}

	data, err := ix.Data()
	if err != nil {
		return nil, fmt.Errorf("encode transfer instruction: %w", err)
	}

	return solana.NewInstruction(s.opts.TokenProgram, ix.Accounts(), data), nil
}
