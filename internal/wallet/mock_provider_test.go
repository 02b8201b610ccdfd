package wallet_test

import (
	"context"
	"errors"
	"testing"

	errs "github.com/ballotsync/ballotsync/internal/errors"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

const testChainId = int64(1337)

var testAccounts = []string{"0xabc", "0xdef"}

func getTestProvider() *wallet.MockProvider {
	return wallet.NewMockProvider(testAccounts, testChainId)
}

func TestRequestAccountsReturnsConfiguredAccounts(t *testing.T) {
	provider := getTestProvider()

	result, err := provider.Request(context.Background(), wallet.MethodRequestAccounts, nil)
	if err != nil {
		t.Fatalf("request accounts failed: %v", err)
	}

	accounts, ok := result.([]string)
	if !ok {
		t.Fatalf("expected []string result, got %T", result)
	}

	if len(accounts) != 2 || accounts[0] != "0xabc" {
		t.Fatalf("unexpected accounts %v", accounts)
	}
}

func TestChainIdBeforeAndAfterSwitchChain(t *testing.T) {
	provider := getTestProvider()

	result, err := provider.Request(context.Background(), wallet.MethodChainId, nil)
	if err != nil {
		t.Fatalf("chain id request failed: %v", err)
	}

	if result.(int64) != testChainId {
		t.Fatalf("expected default chain id %d, got %v", testChainId, result)
	}

	provider.SwitchChain(5)

	result, err = provider.Request(context.Background(), wallet.MethodChainId, nil)
	if err != nil {
		t.Fatalf("chain id request failed: %v", err)
	}

	if result.(int64) != 5 {
		t.Fatalf("expected chain id 5 after switch, got %v", result)
	}
}

func TestSwitchChainEmitsExactlyOneChainChanged(t *testing.T) {
	provider := getTestProvider()

	notifications := 0
	provider.On(wallet.EventChainChanged, func(event string, data any) {
		notifications++
		if data.(int64) != 5 {
			t.Fatalf("expected chainChanged data 5, got %v", data)
		}
	})

	provider.SwitchChain(5)

	if notifications != 1 {
		t.Fatalf("expected exactly one chainChanged notification, got %d", notifications)
	}
}

func TestListenersInvokedInRegistrationOrder(t *testing.T) {
	provider := getTestProvider()

	var order []int
	provider.On(wallet.EventConnect, func(event string, data any) {
		order = append(order, 1)
	})
	provider.On(wallet.EventConnect, func(event string, data any) {
		order = append(order, 2)
	})
	provider.On(wallet.EventConnect, func(event string, data any) {
		order = append(order, 3)
	})

	provider.Connect()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("listeners invoked out of registration order: %v", order)
	}
}

func TestSignatureIsDeterministic(t *testing.T) {
	provider := getTestProvider()
	params := wallet.SignParams{Account: "0xabc", Message: "hello"}

	first, err := provider.Request(context.Background(), wallet.MethodSign, params)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	second, err := provider.Request(context.Background(), wallet.MethodSign, params)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if first.(string) != second.(string) {
		t.Fatalf("signatures differ for identical payload: %v vs %v", first, second)
	}

	other, err := provider.Request(context.Background(), wallet.MethodSign, wallet.SignParams{Account: "0xabc", Message: "other"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if first.(string) == other.(string) {
		t.Fatalf("different payloads produced the same signature")
	}
}

func TestUnrecognizedMethodResolvesToNil(t *testing.T) {
	provider := getTestProvider()

	result, err := provider.Request(context.Background(), "wallet_watchAsset", nil)
	if err != nil {
		t.Fatalf("unrecognized method must not fail, got %v", err)
	}

	if result != nil {
		t.Fatalf("unrecognized method must resolve to nil, got %v", result)
	}
}

func TestRejectedApprovalFailsWithUserRejected(t *testing.T) {
	provider := getTestProvider()
	provider.RejectNextRequest()

	_, err := provider.Request(context.Background(), wallet.MethodRequestAccounts, nil)

	rejected := &errs.UserRejectedError{}
	if !errors.As(err, &rejected) {
		t.Fatalf("expected UserRejectedError, got %v", err)
	}

	if rejected.Code != errs.CodeUserRejected {
		t.Fatalf("expected rejection code %d, got %d", errs.CodeUserRejected, rejected.Code)
	}

	//rejection applies to a single request
	_, err = provider.Request(context.Background(), wallet.MethodRequestAccounts, nil)
	if err != nil {
		t.Fatalf("request after rejection failed: %v", err)
	}
}
