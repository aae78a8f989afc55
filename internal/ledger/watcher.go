package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

var ErrTransactionFailed error = errors.New("transaction failed on chain")

// WSWatcher waits for signature notifications over the websocket endpoint.
// Each wait uses its own connection.
type WSWatcher struct {
	endpoint   string
	commitment rpc.CommitmentType
	client     RPCClient
}

// NewWSWatcher subscribes over endpoint and uses client to look up signatures
// that settled before the subscription was in place.
func NewWSWatcher(endpoint string, client RPCClient) *WSWatcher {
	return &WSWatcher{
		endpoint:   endpoint,
		commitment: rpc.CommitmentConfirmed,
		client:     client,
	}
}

// WaitConfirmed returns once the signature reaches confirmed commitment, the
// transaction reports an error, or ctx is done.
func (w *WSWatcher) WaitConfirmed(ctx context.Context, signature solana.Signature) error {
	client, err := ws.Connect(ctx, w.endpoint)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", w.endpoint, err)
	}
	defer client.Close()

	sub, err := client.SignatureSubscribe(signature, w.commitment)
	if err != nil {
		return fmt.Errorf("subscribe to signature: %w", err)
	}
	defer sub.Unsubscribe()

	// a notification for a signature that settled before the subscribe is never sent
	if settled, err := w.settled(ctx, signature); settled {
		return err
	}

	result, err := sub.Recv(ctx)
	if err != nil {
		return fmt.Errorf("receive signature notification: %w", err)
	}

	if result != nil && result.Value.Err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailed, result.Value.Err)
	}

	return nil
}

// settled reports whether the signature already reached confirmed commitment,
// along with the on-chain error if it failed. Lookup errors are treated as not
// settled so the subscription can still deliver the outcome.
func (w *WSWatcher) settled(ctx context.Context, signature solana.Signature) (bool, error) {
	out, err := w.client.GetSignatureStatuses(ctx, false, signature)
	if err != nil || out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return false, nil
	}

	status := out.Value[0]
	if status.Err != nil {
		return true, fmt.Errorf("%w: %v", ErrTransactionFailed, status.Err)
	}

	switch status.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return true, nil
	default:
		return false, nil
	}
}
