package models

import (
	"encoding/json"

	"uberdirect/pkg/uberdirect/uberr"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CourierInfo struct {
	Name        *string `json:"name,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Location    *LatLng `json:"location,omitempty"`
	ImgHref     *string `json:"img_href,omitempty"`
}

type RelatedDelivery struct {
	ID           string `json:"id"`
	Relationship string `json:"relationship"`
}

type ManifestInfo struct {
	Reference   *string `json:"reference,omitempty"`
	Description *string `json:"description,omitempty"`
	TotalValue  *int    `json:"total_value,omitempty"`
}

type Dimensions struct {
	Length *int `json:"length,omitempty"`
	Height *int `json:"height,omitempty"`
	Depth  *int `json:"depth,omitempty"`
}

// ManifestItem - одна позиция в посылке. Price в центах, Weight в граммах.
type ManifestItem struct {
	Name            string      `json:"name" validate:"required"`
	Quantity        int         `json:"quantity" validate:"gt=0"`
	Size            Size        `json:"size,omitempty" validate:"omitempty,oneof=small medium large xlarge"`
	Dimensions      *Dimensions `json:"dimensions,omitempty"`
	Price           *int        `json:"price,omitempty" validate:"omitempty,gte=0"`
	MustBeUpright   *bool       `json:"must_be_upright,omitempty"`
	Weight          *int        `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Perishability   *int        `json:"perishability,omitempty"`
	PreparationTime *int        `json:"preparation_time,omitempty"`
}

func NewManifestItem(name string, quantity int, size Size) ManifestItem {
	return ManifestItem{
		Name:     name,
		Quantity: quantity,
		Size:     size,
	}
}

// StructuredAddress - адрес в формате запроса. StreetAddress содержит
// street_address_1, затем опционально street_address_2 и sublocality_level_1.
type StructuredAddress struct {
	StreetAddress []string `json:"street_address" validate:"required,min=1,max=3,dive,required"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state,omitempty"`
	ZipCode       string   `json:"zip_code" validate:"required"`
	Country       string   `json:"country,omitempty"`
}

// Encode возвращает адрес строкой JSON, в таком виде Uber принимает его в pickup_address/dropoff_address.
func (a StructuredAddress) Encode() (string, error) {
	if err := Validate(a); err != nil {
		return "", err
	}
	b, err := json.Marshal(a)
	if err != nil {
		return "", uberr.Wrap(uberr.KindJSON, "encode structured address", err)
	}
	return string(b), nil
}

// ToResponse раскладывает строки адреса по отдельным полям ответа.
func (a StructuredAddress) ToResponse() StructuredAddressResponse {
	res := StructuredAddressResponse{
		City:    optString(a.City),
		State:   optString(a.State),
		ZipCode: optString(a.ZipCode),
		Country: optString(a.Country),
	}

	lines := a.StreetAddress
	if len(lines) > 0 {
		res.StreetAddress1 = optString(lines[0])
	}
	if len(lines) > 1 {
		res.StreetAddress2 = optString(lines[1])
	}
	if len(lines) > 2 {
		res.SublocalityLevel1 = optString(lines[2])
	}
	return res
}

// StructuredAddressResponse - адрес в формате ответа (detailed_address).
type StructuredAddressResponse struct {
	StreetAddress1    *string `json:"street_address_1,omitempty"`
	StreetAddress2    *string `json:"street_address_2,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	ZipCode           *string `json:"zip_code,omitempty"`
	Country           *string `json:"country,omitempty"`
	SublocalityLevel1 *string `json:"sublocality_level_1,omitempty"`
}

// ToRequest собирает адрес обратно в формат запроса. Пустые строки адреса пропускаются,
// sublocality_level_1 всегда идет последней строкой.
func (a StructuredAddressResponse) ToRequest() StructuredAddress {
	var lines []string
	for _, line := range []*string{a.StreetAddress1, a.StreetAddress2, a.SublocalityLevel1} {
		if line != nil && *line != "" {
			lines = append(lines, *line)
		}
	}

	return StructuredAddress{
		StreetAddress: lines,
		City:          deref(a.City),
		State:         deref(a.State),
		ZipCode:       deref(a.ZipCode),
		Country:       deref(a.Country),
	}
}

// VerificationRequirement - что курьер должен сделать на точке (сторона запроса).
// Uber иногда присылает "barcodes": null, это декодируется в пустой список.
type VerificationRequirement struct {
	// Deprecated: используйте SignatureRequirement.
	Signature            *bool                      `json:"signature,omitempty"`
	SignatureRequirement *SignatureRequirement      `json:"signature_requirement,omitempty"`
	Barcodes             []BarcodeRequirement       `json:"barcodes,omitempty" validate:"omitempty,dive"`
	Pincode              *PincodeRequirement        `json:"pincode,omitempty"`
	Package              *PackageRequirement        `json:"package,omitempty"`
	Identification       *IdentificationRequirement `json:"identification,omitempty"`
	Picture              *bool                      `json:"picture,omitempty"`
}

type SignatureRequirement struct {
	Enabled                   bool `json:"enabled"`
	CollectSignerName         bool `json:"collect_signer_name"`
	CollectSignerRelationship bool `json:"collect_signer_relationship"`
}

type BarcodeRequirement struct {
	Value string `json:"value" validate:"required"`
	Type  string `json:"type" validate:"required"`
}

type PincodeRequirement struct {
	Enabled bool   `json:"enabled"`
	Value   string `json:"value,omitempty"`
}

type PackageRequirement struct {
	BagCount   int `json:"bag_count"`
	DrinkCount int `json:"drink_count"`
}

type IdentificationRequirement struct {
	MinAge int `json:"min_age" validate:"gte=0"`
}

// VerificationProof - что курьер фактически собрал на точке (сторона ответа).
type VerificationProof struct {
	Signature      *SignatureProof      `json:"signature,omitempty"`
	Barcodes       []BarcodeRequirement `json:"barcodes,omitempty"`
	Picture        *PictureProof        `json:"picture,omitempty"`
	Identification *IdentificationProof `json:"identification,omitempty"`
	PinCode        *PincodeProof        `json:"pin_code,omitempty"`
}

type SignatureProof struct {
	ImageURL           *string `json:"image_url,omitempty"`
	SignerName         *string `json:"signer_name,omitempty"`
	SignerRelationship *string `json:"signer_relationship,omitempty"`
}

type PictureProof struct {
	ImageURL *string `json:"image_url,omitempty"`
}

type IdentificationProof struct {
	MinAgeVerified *bool `json:"min_age_verified,omitempty"`
}

type PincodeProof struct {
	Entered *string `json:"entered,omitempty"`
}

// WaypointInfo - точка забора, доставки или возврата в ответе.
type WaypointInfo struct {
	Name                     *string                    `json:"name,omitempty"`
	PhoneNumber              *string                    `json:"phone_number,omitempty"`
	Address                  *string                    `json:"address,omitempty"`
	DetailedAddress          *StructuredAddressResponse `json:"detailed_address,omitempty"`
	Notes                    *string                    `json:"notes,omitempty"`
	SellerNotes              *string                    `json:"seller_notes,omitempty"`
	CourierNotes             *string                    `json:"courier_notes,omitempty"`
	Location                 *LatLng                    `json:"location,omitempty"`
	Verification             *VerificationProof         `json:"verification,omitempty"`
	VerificationRequirements *VerificationRequirement   `json:"verification_requirements,omitempty"`
	ExternalStoreID          *string                    `json:"external_store_id,omitempty"`
}

type TestSpecifications struct {
	RoboCourierSpecification *RoboCourierSpecification `json:"robo_courier_specification,omitempty"`
}

type RoboCourierSpecification struct {
	Mode string `json:"mode" validate:"required,oneof=auto custom"`
}

// NewTestSpecifications включает робота-курьера в тестовом окружении Uber.
func NewTestSpecifications(mode string) *TestSpecifications {
	return &TestSpecifications{
		RoboCourierSpecification: &RoboCourierSpecification{Mode: mode},
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
