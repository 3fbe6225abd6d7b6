package domain

// Identity is the base58 public key a wallet exposes once connected.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// Short abbreviates the key for display, e.g. "7xKX…AsU".
func (i Identity) Short() string {
	if len(i) <= 10 {
		return string(i)
	}

	return string(i[:4]) + "…" + string(i[len(i)-3:])
}

type WalletStatus string

const (
	WalletDisconnected WalletStatus = "disconnected"
	WalletConnecting   WalletStatus = "connecting"
	WalletConnected    WalletStatus = "connected"
	WalletFailed       WalletStatus = "failed"
)

// SessionState is a snapshot of a wallet session. Identity is set iff Status is WalletConnected.
type SessionState struct {
	Status   WalletStatus
	Identity Identity
}

func (s SessionState) Connected() bool {
	return s.Status == WalletConnected && s.Identity != ""
}

// Transition is emitted once per wallet status change.
type Transition struct {
	From  WalletStatus
	To    WalletStatus
	State SessionState
	Err   error
}
