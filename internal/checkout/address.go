package checkout

import (
	"errors"

	"github.com/google/uuid"

	"crave-delivery/internal/domain"
)

// ErrIncompleteAddress blocks saving an address form with missing required
// fields. The partial input stays with the caller for correction.
var ErrIncompleteAddress = errors.New("请填写完整信息")

// AddressForm is the new-address entry form. Contact, phone, address and
// door number are required; tag and gender are optional decoration.
type AddressForm struct {
	Contact string `json:"contact"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Door    string `json:"door"`
	Tag     string `json:"tag"`
	Default bool   `json:"default"`
}

func (f AddressForm) Validate() error {
	if f.Contact == "" || f.Phone == "" || f.Address == "" || f.Door == "" {
		return ErrIncompleteAddress
	}
	return nil
}

// ToAddress converts a validated form into an address book entry.
func (f AddressForm) ToAddress() domain.Address {
	gender := "先生"
	if f.Gender == "ms" || f.Gender == "女士" {
		gender = "女士"
	}
	return domain.Address{
		ID:      uuid.New().String(),
		Tag:     f.Tag,
		Address: f.Address,
		Detail:  f.Door,
		Name:    f.Contact,
		Phone:   f.Phone,
		Gender:  gender,
		Default: f.Default,
	}
}
