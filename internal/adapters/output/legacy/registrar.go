package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

// Registrar requests a new application key from the bridge's plaintext /api endpoint.
// huego's CreateUser cannot ask for a client key, so this speaks the endpoint directly.
type Registrar struct {
	httpClient *http.Client
}

var _ ports.Registrar = (*Registrar)(nil)

type registrationRequest struct {
	DeviceType        string `json:"devicetype"`
	GenerateClientKey bool   `json:"generateclientkey"`
}

func NewRegistrar(timeout time.Duration) *Registrar {
	return &Registrar{httpClient: &http.Client{Timeout: timeout}}
}

func (r *Registrar) Register(ctx context.Context, address, deviceType string) (*model.Credentials, error) {
	body, err := json.Marshal(registrationRequest{DeviceType: deviceType, GenerateClientKey: true})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL(address), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &model.BridgeAPIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return parseRegistration(data)
}

// parseRegistration reads [{"success":{...}}] or [{"error":{...}}].
func parseRegistration(data []byte) (*model.Credentials, error) {
	if !gjson.ValidBytes(data) {
		return nil, &model.RegistrationError{Description: "unexpected response: " + string(data)}
	}

	if e := gjson.GetBytes(data, "0.error"); e.Exists() {
		return nil, &model.RegistrationError{
			Type:        int(e.Get("type").Int()),
			Description: e.Get("description").String(),
		}
	}

	username := gjson.GetBytes(data, "0.success.username")
	if !username.Exists() || username.String() == "" {
		return nil, &model.RegistrationError{Description: "unexpected response: " + string(data)}
	}

	return &model.Credentials{
		Username:  username.String(),
		ClientKey: gjson.GetBytes(data, "0.success.clientkey").String(),
	}, nil
}

func apiURL(address string) string {
	address = strings.TrimSuffix(address, "/")
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address + "/api"
	}
	return fmt.Sprintf("http://%s/api", address)
}
