package service

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

type MockResources struct {
	mock.Mock
}

func (m *MockResources) List(ctx context.Context, kind model.ResourceKind) ([]json.RawMessage, error) {
	args := m.Called(ctx, kind)
	items, _ := args.Get(0).([]json.RawMessage)
	return items, args.Error(1)
}

func (m *MockResources) Get(ctx context.Context, kind model.ResourceKind, id string) (json.RawMessage, error) {
	args := m.Called(ctx, kind, id)
	item, _ := args.Get(0).(json.RawMessage)
	return item, args.Error(1)
}

func (m *MockResources) Create(ctx context.Context, kind model.ResourceKind, body interface{}) ([]model.ResourceRef, error) {
	args := m.Called(ctx, kind, body)
	return nil, args.Error(0)
}

func (m *MockResources) Update(ctx context.Context, kind model.ResourceKind, id string, body interface{}) ([]model.ResourceRef, error) {
	args := m.Called(ctx, kind, id, body)
	return []model.ResourceRef{{RID: id, RType: kind}}, args.Error(0)
}

func (m *MockResources) Delete(ctx context.Context, kind model.ResourceKind, id string) ([]model.ResourceRef, error) {
	args := m.Called(ctx, kind, id)
	return nil, args.Error(0)
}

type MockLocator struct {
	mock.Mock
}

func (m *MockLocator) Locate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Get(ctx context.Context) (*model.Credentials, error) {
	args := m.Called(ctx)
	creds, _ := args.Get(0).(*model.Credentials)
	return creds, args.Error(1)
}

func (m *MockCredentialRepository) Save(ctx context.Context, creds *model.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Register(ctx context.Context, address, deviceType string) (*model.Credentials, error) {
	args := m.Called(ctx, address, deviceType)
	creds, _ := args.Get(0).(*model.Credentials)
	return creds, args.Error(1)
}

type MockAdmin struct {
	mock.Mock
}

func (m *MockAdmin) GetBridgeInfo(ctx context.Context, conn model.Connection) (*model.BridgeInfo, error) {
	args := m.Called(ctx, conn)
	info, _ := args.Get(0).(*model.BridgeInfo)
	return info, args.Error(1)
}

func (m *MockAdmin) GetUsers(ctx context.Context, conn model.Connection) ([]model.BridgeUser, error) {
	args := m.Called(ctx, conn)
	users, _ := args.Get(0).([]model.BridgeUser)
	return users, args.Error(1)
}

// staticProvider skips the session and hands out fixed resources.
type staticProvider struct {
	ops ports.ResourceOperations
	err error
}

func (p *staticProvider) Resources(ctx context.Context) (ports.ResourceOperations, error) {
	return p.ops, p.err
}

func raw(items ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, i := range items {
		out = append(out, json.RawMessage(i))
	}
	return out
}
