package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zsmartex/presale/presale"
)

// CustodyClient talks to the custody daemon that holds the deployed tokens and
// the base asset vault. Every engine side effect that leaves the ledger goes
// through here.
type CustodyClient struct {
	endpoint string
	client   *http.Client
}

// UsdtAddress is the deployed accounting asset every presale settles in.
func UsdtAddress() string {
	return os.Getenv("USDT_TOKEN_ADDRESS")
}

func NewCustodyClient() *CustodyClient {
	return &CustodyClient{
		endpoint: os.Getenv("CUSTODY_SERVICE_URL"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CustodyClient) post(path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.client.Post(c.endpoint+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		reason, _ := ioutil.ReadAll(resp.Body)

		return errors.New("custody: " + resp.Status + " " + string(reason))
	}

	return nil
}

func (c *CustodyClient) get(path string, out interface{}) error {
	resp, err := c.client.Get(c.endpoint + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.New("custody: " + resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Resolve checks the handle points at a deployed token before handing back a
// client for it.
func (c *CustodyClient) Resolve(address string) (presale.Token, error) {
	if len(address) == 0 {
		return nil, presale.ErrInvalidToken
	}

	var token struct {
		Address string `json:"address"`
	}

	if err := c.get("/api/v2/tokens/"+address, &token); err != nil {
		return nil, presale.ErrInvalidToken
	}

	return &TokenClient{custody: c, address: address}, nil
}

func (c *CustodyClient) StableToken(address string) presale.StableToken {
	return &StableClient{TokenClient{custody: c, address: address}}
}

func (c *CustodyClient) Vault() presale.Vault {
	return &VaultClient{custody: c}
}

// TokenClient drives one deployed token through the custody daemon.
type TokenClient struct {
	custody *CustodyClient
	address string
}

func (t *TokenClient) Mint(to string, amount decimal.Decimal) error {
	return t.custody.post("/api/v2/tokens/"+t.address+"/mints", map[string]interface{}{
		"to":     to,
		"amount": amount,
	})
}

func (t *TokenClient) Transfer(to string, amount decimal.Decimal) error {
	return t.custody.post("/api/v2/tokens/"+t.address+"/transfers", map[string]interface{}{
		"to":     to,
		"amount": amount,
	})
}

func (t *TokenClient) BalanceOf(holder string) (decimal.Decimal, error) {
	var balance struct {
		Balance decimal.Decimal `json:"balance"`
	}

	if err := t.custody.get("/api/v2/tokens/"+t.address+"/balances/"+holder, &balance); err != nil {
		return decimal.Zero, err
	}

	return balance.Balance, nil
}

// StableClient adds the allowance pull the accounting rail needs.
type StableClient struct {
	TokenClient
}

func (t *StableClient) TransferFrom(from string, to string, amount decimal.Decimal) error {
	return t.custody.post("/api/v2/tokens/"+t.address+"/transfers", map[string]interface{}{
		"from":   from,
		"to":     to,
		"amount": amount,
	})
}

// VaultClient pays out collected base asset.
type VaultClient struct {
	custody *CustodyClient
}

func (v *VaultClient) Transfer(to string, amount decimal.Decimal) error {
	return v.custody.post("/api/v2/vault/transfers", map[string]interface{}{
		"to":     to,
		"amount": amount,
	})
}
