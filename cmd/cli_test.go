package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/gifportal/internal/version"
	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGif = "https://media.giphy.com/media/portal.gif"

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestWalletShowWithoutWalletExplainsHowToCreateOne(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "wallet", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet capability missing")
	assert.Contains(t, err.Error(), "portal wallet new")
}

func TestWalletNewShowAndForget(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "wallet", "new")
	require.NoError(t, err)
	identity := strings.TrimPrefix(strings.TrimSpace(stdout), "created wallet ")
	_, err = solana.PublicKeyFromBase58(identity)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(home, ".gifportal", "secrets", "gifportal", "wallets", "default", "keypair"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	stdout, _, err = executeCLI(t, home, "wallet", "show")
	require.NoError(t, err)
	assert.Equal(t, identity+"\ttrusted=false\n", stdout)

	_, _, err = executeCLI(t, home, "wallet", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet already exists")

	stdout, _, err = executeCLI(t, home, "wallet", "forget")
	require.NoError(t, err)
	assert.Contains(t, stdout, identity)

	_, _, err = executeCLI(t, home, "wallet", "show")
	require.Error(t, err)
}

func TestWalletImportBase58(t *testing.T) {
	home := t.TempDir()
	key := solana.NewWallet().PrivateKey

	stdout, _, err := executeCLI(t, home, "wallet", "import", key.String())
	require.NoError(t, err)
	assert.Equal(t, "imported wallet "+key.PublicKey().String()+"\n", stdout)

	_, _, err = executeCLI(t, home, "wallet", "import", "not-a-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wallet key")
}

func TestConnectRecordsTrust(t *testing.T) {
	home := t.TempDir()
	identity := createWallet(t, home)

	stdout, _, err := executeCLI(t, home, "connect", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "connected as "+identity+"\n", stdout)

	stdout, _, err = executeCLI(t, home, "connect")
	require.NoError(t, err)
	assert.Equal(t, "already connected as "+identity+"\n", stdout)

	stdout, _, err = executeCLI(t, home, "wallet", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "trusted=true")

	trustFile, err := os.ReadFile(filepath.Join(home, ".gifportal", "trusted.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(trustFile), identity)
}

func TestConnectPromptDeclined(t *testing.T) {
	home := t.TempDir()
	createWallet(t, home)

	stdout, _, err := executeCLIWithInput(t, home, "n\n", "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet connection rejected")
	assert.Contains(t, stdout, "Allow gifportal to use wallet")
}

func TestConnectWithoutWallet(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "connect", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet capability missing")
}

func TestListReportsCorruptWalletKey(t *testing.T) {
	home := t.TempDir()
	keyDir := filepath.Join(home, ".gifportal", "secrets", "gifportal", "wallets", "default")
	require.NoError(t, os.MkdirAll(keyDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(keyDir, "keypair"), []byte("not a key"), 0o600))
	rpc := newFakeLedger(t)
	rpc.configure(t)

	_, _, err := executeCLI(t, home, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wallet key")
	assert.NotContains(t, err.Error(), "wallet capability missing")

	_, _, err = executeCLI(t, home, "connect", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wallet key")
}

func TestListRequiresProgramConfiguration(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program id not configured")
}

func TestListRequiresTrustedWallet(t *testing.T) {
	home := t.TempDir()
	createWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)

	_, _, err := executeCLI(t, home, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "portal connect")
}

func TestListRendersRemoteEntries(t *testing.T) {
	home := t.TempDir()
	identity := connectedWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)
	rpc.setItems(identity, "https://media.giphy.com/one.gif", "https://media.giphy.com/two.gif")

	stdout, _, err := executeCLI(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gifs: 2")
	assert.Contains(t, stdout, "https://media.giphy.com/one.gif")
	assert.Contains(t, stdout, "https://media.giphy.com/two.gif")

	stdout, _, err = executeCLI(t, home, "list", "--json")
	require.NoError(t, err)

	var out listOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, rpc.list.String(), out.Address)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "https://media.giphy.com/one.gif", out.Items[0].Link)
	assert.Equal(t, identity, out.Items[0].Submitter)
	assert.Equal(t, "confirmed", out.Items[0].State)
}

func TestListUnavailableAccount(t *testing.T) {
	home := t.TempDir()
	connectedWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)

	_, _, err := executeCLI(t, home, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch remote list failed")
}

func TestAddRejectsEmptyLink(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "add", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media link is empty")
}

func TestAddLocalOnlyWhenWriteThroughIsOff(t *testing.T) {
	home := t.TempDir()
	connectedWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)
	t.Setenv("PORTAL_LIST_WRITE_THROUGH", "false")

	stdout, _, err := executeCLI(t, home, "add", testGif)
	require.NoError(t, err)
	assert.Contains(t, stdout, "added "+testGif+" locally")
	assert.Zero(t, rpc.sendCount())
}

func TestAddSubmitsTransaction(t *testing.T) {
	home := t.TempDir()
	identity := connectedWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)
	rpc.setItems(identity)

	stdout, _, err := executeCLI(t, home, "add", testGif)
	require.NoError(t, err)
	assert.Contains(t, stdout, "added "+testGif)
	assert.Contains(t, stdout, "signature ")
	assert.Equal(t, 1, rpc.sendCount())
}

func TestInitSavesListAddress(t *testing.T) {
	home := t.TempDir()
	createWallet(t, home)
	rpc := newFakeLedger(t)
	rpc.configure(t)

	stdout, _, err := executeCLI(t, home, "init", "--yes", "--save")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created list account ")
	assert.Contains(t, stdout, "saved list.address")

	configFile, err := os.ReadFile(filepath.Join(home, ".gifportal", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(configFile), "address")
	assert.Equal(t, 1, rpc.sendCount())
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("PORTAL_WALLET_SECRET_BACKEND", "file")
	t.Setenv("PORTAL_LOG_LEVEL", "error")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func createWallet(t *testing.T, home string) string {
	t.Helper()

	stdout, _, err := executeCLI(t, home, "wallet", "new")
	require.NoError(t, err)
	return strings.TrimPrefix(strings.TrimSpace(stdout), "created wallet ")
}

func connectedWallet(t *testing.T, home string) string {
	t.Helper()

	identity := createWallet(t, home)
	_, _, err := executeCLI(t, home, "connect", "--yes")
	require.NoError(t, err)
	return identity
}

// fakeLedger answers the handful of JSON-RPC methods the portal uses.
type fakeLedger struct {
	srv     *httptest.Server
	program solana.PublicKey
	list    solana.PublicKey

	mu      sync.Mutex
	account []byte
	sent    int
}

func newFakeLedger(t *testing.T) *fakeLedger {
	t.Helper()

	f := &fakeLedger{
		program: solana.NewWallet().PublicKey(),
		list:    solana.NewWallet().PublicKey(),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeLedger) configure(t *testing.T) {
	t.Helper()
	t.Setenv("PORTAL_NETWORK_ENDPOINT", f.srv.URL)
	t.Setenv("PORTAL_NETWORK_COMMITMENT", "confirmed")
	t.Setenv("PORTAL_PROGRAM_ID", f.program.String())
	t.Setenv("PORTAL_LIST_ADDRESS", f.list.String())
}

type fakeItem struct {
	GifLink     string
	UserAddress solana.PublicKey
}

type fakeAccount struct {
	TotalGifs uint64
	GifList   []fakeItem
}

func (f *fakeLedger) setItems(submitter string, links ...string) {
	owner := solana.MustPublicKeyFromBase58(submitter)
	account := fakeAccount{TotalGifs: uint64(len(links)), GifList: []fakeItem{}}
	for _, link := range links {
		account.GifList = append(account.GifList, fakeItem{GifLink: link, UserAddress: owner})
	}

	sum := sha256.Sum256([]byte("account:BaseAccount"))
	var buf bytes.Buffer
	buf.Write(sum[:8])
	if err := bin.NewBorshEncoder(&buf).Encode(account); err != nil {
		panic(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.account = buf.Bytes()
}

func (f *fakeLedger) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}

func (f *fakeLedger) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	slot := map[string]interface{}{"slot": 1}

	f.mu.Lock()
	switch req.Method {
	case "getAccountInfo":
		var value interface{}
		if f.account != nil {
			value = map[string]interface{}{
				"data":       []string{base64.StdEncoding.EncodeToString(f.account), "base64"},
				"executable": false,
				"lamports":   1_000_000,
				"owner":      f.program.String(),
				"rentEpoch":  0,
			}
		}
		resp["result"] = map[string]interface{}{"context": slot, "value": value}
	case "getLatestBlockhash":
		resp["result"] = map[string]interface{}{
			"context": slot,
			"value":   map[string]interface{}{"blockhash": solana.NewWallet().PublicKey().String(), "lastValidBlockHeight": 100},
		}
	case "sendTransaction":
		f.sent++
		resp["result"] = sentSignature(req.Params)
	case "getSignatureStatuses":
		resp["result"] = map[string]interface{}{
			"context": slot,
			"value": []interface{}{
				map[string]interface{}{"slot": 1, "confirmations": nil, "err": nil, "confirmationStatus": "finalized"},
			},
		}
	default:
		resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func sentSignature(params []json.RawMessage) string {
	if len(params) == 0 {
		return ""
	}

	var encoded string
	if err := json.Unmarshal(params[0], &encoded); err != nil {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil || len(tx.Signatures) == 0 {
		return ""
	}
	return tx.Signatures[0].String()
}
