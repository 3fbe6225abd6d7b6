package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	solana "github.com/gagliardetto/solana-go"
)

// IDL is the subset of an Anchor interface description the client relies on.
type IDL struct {
	Version      string           `json:"version"`
	Name         string           `json:"name"`
	Instructions []IDLInstruction `json:"instructions"`
	Accounts     []IDLAccount     `json:"accounts"`
	Metadata     IDLMetadata      `json:"metadata"`
}

type IDLInstruction struct {
	Name string `json:"name"`
}

type IDLAccount struct {
	Name string `json:"name"`
}

type IDLMetadata struct {
	Address string `json:"address"`
}

var requiredInstructions = []string{"addGif", "startStuffOff"}

func LoadIDL(path string) (IDL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IDL{}, fmt.Errorf("read idl: %w", err)
	}

	return ParseIDL(data)
}

func ParseIDL(data []byte) (IDL, error) {
	var idl IDL
	if err := json.Unmarshal(data, &idl); err != nil {
		return IDL{}, fmt.Errorf("decode idl: %w", err)
	}
	if err := idl.validate(); err != nil {
		return IDL{}, err
	}

	return idl, nil
}

func (i IDL) ProgramID() (solana.PublicKey, error) {
	if i.Metadata.Address == "" {
		return solana.PublicKey{}, errors.New("idl metadata.address is empty")
	}

	programID, err := solana.PublicKeyFromBase58(i.Metadata.Address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse idl program address: %w", err)
	}

	return programID, nil
}

func (i IDL) validate() error {
	hasAccount := false
	for _, account := range i.Accounts {
		if account.Name == baseAccountName {
			hasAccount = true
			break
		}
	}
	if !hasAccount {
		return fmt.Errorf("idl %q does not declare account %s", i.Name, baseAccountName)
	}

	declared := make(map[string]struct{}, len(i.Instructions))
	for _, ix := range i.Instructions {
		declared[ix.Name] = struct{}{}
	}
	for _, name := range requiredInstructions {
		if _, ok := declared[name]; !ok {
			return fmt.Errorf("idl %q does not declare instruction %s", i.Name, name)
		}
	}

	return nil
}
