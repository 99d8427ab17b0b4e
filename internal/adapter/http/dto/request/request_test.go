package request

import (
	"errors"
	"testing"

	"thecodecup/internal/domain/entities"
)

func TestAddCartLineRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := AddCartLineRequest{ItemID: " 1 "}
		if r.ResolveItemID() != "1" {
			t.Fatalf("unexpected item id %q", r.ResolveItemID())
		}
		if r.ResolveQuantity() != 1 {
			t.Fatalf("expected default quantity 1, got %d", r.ResolveQuantity())
		}
		opts, err := r.ResolveOptions()
		if err != nil || opts != entities.DefaultLineOptions() {
			t.Fatalf("expected default options, got %+v (%v)", opts, err)
		}
	})

	t.Run("explicit zero quantity is kept", func(t *testing.T) {
		zero := 0
		r := AddCartLineRequest{ItemID: "1", Quantity: &zero}
		if r.ResolveQuantity() != 0 {
			t.Fatalf("expected 0, got %d", r.ResolveQuantity())
		}
	})

	t.Run("invalid option", func(t *testing.T) {
		r := AddCartLineRequest{ItemID: "1", Shot: "Triple"}
		if _, err := r.ResolveOptions(); !errors.Is(err, entities.ErrInvalidLineOption) {
			t.Fatalf("expected ErrInvalidLineOption, got %v", err)
		}
	})
}

func TestRemoveCartLineRequest_ResolveKey(t *testing.T) {
	key, err := RemoveCartLineRequest{ItemID: "2", Size: "l", Select: "cold"}.ResolveKey()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := entities.LineKey{ItemID: "2", Size: entities.SizeLarge, Select: entities.SelectCold, Shot: entities.ShotSingle}
	if key != want {
		t.Fatalf("expected %+v, got %+v", want, key)
	}
}

func TestCheckoutRequest_ToCommand(t *testing.T) {
	cmd := CheckoutRequest{
		ReceiverName:    "Linh",
		ReceiverPhone:   "0900",
		ShippingAddress: "District 1",
		PaymentMethod:   "card",
		VoucherID:       "v1",
	}.ToCommand()
	if cmd.ReceiverName != "Linh" || cmd.PaymentMethod != "card" || cmd.VoucherID != "v1" || cmd.ShippingAddress != "District 1" {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestProfileRequest_ToEntity(t *testing.T) {
	p := ProfileRequest{FullName: "Linh", Email: "linh@example.com"}.ToEntity()
	if p.FullName != "Linh" || p.Email != "linh@example.com" {
		t.Fatalf("unexpected profile %+v", p)
	}
}
