package eats

type AcceptOrderRequest struct {
	Reason              string          `json:"reason" validate:"required"`
	PickupTime          *int64          `json:"pickup_time,omitempty"`
	ExternalReferenceID *string         `json:"external_reference_id,omitempty"`
	FieldsRelayed       []FieldsRelayed `json:"fields_relayed,omitempty"`
}

type FieldsRelayed struct {
	OrderSpecialInstructions *bool `json:"order_special_instructions,omitempty"`
	ItemSpecialInstructions  *bool `json:"item_special_instructions,omitempty"`
	ItemSpecialRequests      *bool `json:"item_special_requests,omitempty"`
	Promotions               *bool `json:"promotions,omitempty"`
}

type CancelOrderRequest struct {
	Reason          string  `json:"reason" validate:"required"`
	Details         *string `json:"details,omitempty"`
	CancellingParty string  `json:"cancelling_party" validate:"required,oneof=MERCHANT CUSTOMER COURIER UBER"`
}

type UpdateOrderRequest struct {
	FulfillmentIssues []FulfillmentIssue `json:"fulfillment_issues" validate:"required,min=1,dive"`
}

type FulfillmentIssue struct {
	FulfillmentIssueType  *string               `json:"fulfillment_issue_type,omitempty"`
	FulfillmentActionType *string               `json:"fulfillment_action_type,omitempty"`
	RootItem              *OrderItem            `json:"root_item,omitempty"`
	ItemAvailabilityInfo  *ItemAvailabilityInfo `json:"item_availability_info,omitempty"`
	ItemSubstitute        *OrderItem            `json:"item_substitute,omitempty"`
}

type ItemAvailabilityInfo struct {
	ItemsRequested *int `json:"items_requested,omitempty"`
	ItemsAvailable *int `json:"items_available,omitempty"`
}

// OrderItem - позиция корзины заказа, не путать с Item из меню.
type OrderItem struct {
	ID                     *string              `json:"id,omitempty"`
	InstanceID             *string              `json:"instance_id,omitempty"`
	Title                  *string              `json:"title,omitempty"`
	ExternalData           *string              `json:"external_data,omitempty"`
	Quantity               *int                 `json:"quantity,omitempty"`
	DefaultQuantity        *int                 `json:"default_quantity,omitempty"`
	Price                  *ItemPrice           `json:"price,omitempty"`
	SelectedModifierGroups []OrderModifierGroup `json:"selected_modifier_groups,omitempty"`
	SpecialRequests        []SpecialRequest     `json:"special_requests,omitempty"`
	SpecialInstructions    *string              `json:"special_instructions,omitempty"`
	FulfillmentAction      *FulfillmentAction   `json:"fulfillment_action,omitempty"`
	EaterID                *string              `json:"eater_id,omitempty"`
	TaxInfo                *ItemTaxLabels       `json:"tax_info,omitempty"`
}

type ItemPrice struct {
	UnitPrice      *Money `json:"unit_price,omitempty"`
	TotalPrice     *Money `json:"total_price,omitempty"`
	BaseUnitPrice  *Money `json:"base_unit_price,omitempty"`
	BaseTotalPrice *Money `json:"base_total_price,omitempty"`
}

type OrderModifierGroup struct {
	ID            *string     `json:"id,omitempty"`
	Title         *string     `json:"title,omitempty"`
	ExternalData  *string     `json:"external_data,omitempty"`
	SelectedItems []OrderItem `json:"selected_items,omitempty"`
	RemovedItems  []OrderItem `json:"removed_items,omitempty"`
}

type SpecialRequest struct {
	Allergy *Allergy `json:"allergy,omitempty"`
}

type Allergy struct {
	AllergensToExclude  []Allergen `json:"allergens_to_exclude,omitempty"`
	AllergyInstructions *string    `json:"allergy_instructions,omitempty"`
}

type Allergen struct {
	Type         *string `json:"type,omitempty"`
	FreeformText *string `json:"freeform_text,omitempty"`
}

type FulfillmentAction struct {
	FulfillmentActionType *string     `json:"fulfillment_action_type,omitempty"`
	ItemSubstitutes       []OrderItem `json:"item_substitutes,omitempty"`
}

type ItemTaxLabels struct {
	Labels []string `json:"labels,omitempty"`
}

// Money - Amount в минимальных единицах валюты.
type Money struct {
	Amount          *int    `json:"amount,omitempty"`
	CurrencyCode    *string `json:"currency_code,omitempty"`
	FormattedAmount *string `json:"formatted_amount,omitempty"`
}

// OrderDetails - ответ GET /v2/eats/order/{order_id}.
type OrderDetails struct {
	ID                        *string        `json:"id,omitempty"`
	DisplayID                 *string        `json:"display_id,omitempty"`
	ExternalReferenceID       *string        `json:"external_reference_id,omitempty"`
	CurrentState              *string        `json:"current_state,omitempty"`
	Type                      *string        `json:"type,omitempty"`
	Brand                     *string        `json:"brand,omitempty"`
	Store                     *Store         `json:"store,omitempty"`
	Eater                     *Eater         `json:"eater,omitempty"`
	Eaters                    []Eater        `json:"eaters,omitempty"`
	Cart                      *Cart          `json:"cart,omitempty"`
	Payment                   *Payment       `json:"payment,omitempty"`
	Packaging                 *Packaging     `json:"packaging,omitempty"`
	PlacedAt                  *string        `json:"placed_at,omitempty"`
	EstimatedReadyForPickupAt *string        `json:"estimated_ready_for_pickup_at,omitempty"`
	Deliveries                []EatsDelivery `json:"deliveries,omitempty"`
	OrderManagerClientID      *string        `json:"order_manager_client_id,omitempty"`
}

type Store struct {
	ID                *string `json:"id,omitempty"`
	Name              *string `json:"name,omitempty"`
	IntegratorStoreID *string `json:"integrator_store_id,omitempty"`
	IntegratorBrandID *string `json:"integrator_brand_id,omitempty"`
	MerchantStoreID   *string `json:"merchant_store_id,omitempty"`
}

type Eater struct {
	ID        *string        `json:"id,omitempty"`
	FirstName *string        `json:"first_name,omitempty"`
	LastName  *string        `json:"last_name,omitempty"`
	Phone     *string        `json:"phone,omitempty"`
	PhoneCode *string        `json:"phone_code,omitempty"`
	Delivery  *EaterDelivery `json:"delivery,omitempty"`
}

type EaterDelivery struct {
	Location *EaterLocation `json:"location,omitempty"`
	Type     *string        `json:"type,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

type EaterLocation struct {
	Type          *string  `json:"type,omitempty"`
	StreetAddress *string  `json:"street_address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GooglePlaceID *string  `json:"google_place_id,omitempty"`
	UnitNumber    *string  `json:"unit_number,omitempty"`
	BusinessName  *string  `json:"business_name,omitempty"`
	Title         *string  `json:"title,omitempty"`
}

// EatsDelivery - курьер Uber Eats, назначенный на заказ.
type EatsDelivery struct {
	ID                  *string  `json:"id,omitempty"`
	FirstName           *string  `json:"first_name,omitempty"`
	Vehicle             *Vehicle `json:"vehicle,omitempty"`
	PictureURL          *string  `json:"picture_url,omitempty"`
	EstimatedPickupTime *string  `json:"estimated_pickup_time,omitempty"`
	CurrentState        *string  `json:"current_state,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	PhoneCode           *string  `json:"phone_code,omitempty"`
}

type Vehicle struct {
	Make                *string `json:"make,omitempty"`
	Model               *string `json:"model,omitempty"`
	Color               *string `json:"color,omitempty"`
	LicensePlate        *string `json:"license_plate,omitempty"`
	IsAutonomous        *bool   `json:"is_autonomous,omitempty"`
	HandoffInstructions *string `json:"handoff_instructions,omitempty"`
	Passcode            *string `json:"passcode,omitempty"`
}

type Cart struct {
	Items               []OrderItem        `json:"items,omitempty"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
	FulfillmentIssues   []FulfillmentIssue `json:"fulfillment_issues,omitempty"`
}

type Payment struct {
	Charges    *Charges    `json:"charges,omitempty"`
	Accounting *Accounting `json:"accounting,omitempty"`
	Promotions *Promotions `json:"promotions,omitempty"`
}

type Charges struct {
	Total                   *Money `json:"total,omitempty"`
	SubTotal                *Money `json:"sub_total,omitempty"`
	Tax                     *Money `json:"tax,omitempty"`
	TotalFee                *Money `json:"total_fee,omitempty"`
	TotalFeeTax             *Money `json:"total_fee_tax,omitempty"`
	BagFee                  *Money `json:"bag_fee,omitempty"`
	TotalPromoApplied       *Money `json:"total_promo_applied,omitempty"`
	SubTotalPromoApplied    *Money `json:"sub_total_promo_applied,omitempty"`
	TaxPromoApplied         *Money `json:"tax_promo_applied,omitempty"`
	PickAndPackFee          *Money `json:"pick_and_pack_fee,omitempty"`
	DeliveryFee             *Money `json:"delivery_fee,omitempty"`
	DeliveryFeeTax          *Money `json:"delivery_fee_tax,omitempty"`
	SmallOrderFee           *Money `json:"small_order_fee,omitempty"`
	SmallOrderFeeTax        *Money `json:"small_order_fee_tax,omitempty"`
	Tip                     *Money `json:"tip,omitempty"`
	CashAmountDue           *Money `json:"cash_amount_due,omitempty"`
	MarketplaceFeeDueToUber *Money `json:"marketplace_fee_due_to_uber,omitempty"`
}

type Accounting struct {
	TaxRemittance *TaxRemittance `json:"tax_remittance,omitempty"`
	TaxReporting  *TaxReporting  `json:"tax_reporting,omitempty"`
}

type TaxRemittance struct {
	Tax              *RemittanceInfo `json:"tax,omitempty"`
	TotalFeeTax      *RemittanceInfo `json:"total_fee_tax,omitempty"`
	DeliveryFeeTax   *RemittanceInfo `json:"delivery_fee_tax,omitempty"`
	SmallOrderFeeTax *RemittanceInfo `json:"small_order_fee_tax,omitempty"`
}

// RemittanceInfo - кто перечисляет налог: uber, ресторан, курьер или покупатель.
type RemittanceInfo struct {
	Uber       []PayeeDetail `json:"uber,omitempty"`
	Restaurant []PayeeDetail `json:"restaurant,omitempty"`
	Courier    []PayeeDetail `json:"courier,omitempty"`
	Eater      []PayeeDetail `json:"eater,omitempty"`
}

type PayeeDetail struct {
	Value *Money `json:"value,omitempty"`
}

type TaxReporting struct {
	Breakdown   *TaxBreakdown `json:"breakdown,omitempty"`
	Origin      *TaxLocation  `json:"origin,omitempty"`
	Destination *TaxLocation  `json:"destination,omitempty"`
}

type TaxBreakdown struct {
	Items      []TaxLine `json:"items,omitempty"`
	Fees       []TaxLine `json:"fees,omitempty"`
	Promotions []TaxLine `json:"promotions,omitempty"`
}

type TaxLine struct {
	InstanceID  *string `json:"instance_id,omitempty"`
	Type        *string `json:"type,omitempty"`
	GrossAmount *Money  `json:"gross_amount,omitempty"`
	NetAmount   *Money  `json:"net_amount,omitempty"`
	TotalTax    *Money  `json:"total_tax,omitempty"`
	Taxes       []Tax   `json:"taxes,omitempty"`
}

type Tax struct {
	Rate          *string       `json:"rate,omitempty"`
	TaxAmount     *Money        `json:"tax_amount,omitempty"`
	IsInclusive   *bool         `json:"is_inclusive,omitempty"`
	Jurisdiction  *Jurisdiction `json:"jurisdiction,omitempty"`
	Imposition    *Imposition   `json:"imposition,omitempty"`
	TaxRemittance *string       `json:"tax_remittance,omitempty"`
}

type Jurisdiction struct {
	Level *string `json:"level,omitempty"`
	Name  *string `json:"name,omitempty"`
}

type Imposition struct {
	Description *string `json:"description,omitempty"`
	Name        *string `json:"name,omitempty"`
}

type TaxLocation struct {
	ID          *string `json:"id,omitempty"`
	CountryISO2 *string `json:"country_iso2,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
}

type Promotions struct {
	Promotions []Promotion `json:"promotions,omitempty"`
}

type Promotion struct {
	ExternalPromotionID     *string        `json:"external_promotion_id,omitempty"`
	PromoType               *string        `json:"promo_type,omitempty"`
	PromoDiscountValue      *int           `json:"promo_discount_value,omitempty"`
	PromoDiscountPercentage *int           `json:"promo_discount_percentage,omitempty"`
	PromoDeliveryFeeValue   *int           `json:"promo_delivery_fee_value,omitempty"`
	DiscountItems           []DiscountItem `json:"discount_items,omitempty"`
}

type DiscountItem struct {
	ExternalID            *string `json:"external_id,omitempty"`
	DiscountedQuantity    *int    `json:"discounted_quantity,omitempty"`
	DiscountAmountApplied *int    `json:"discount_amount_applied,omitempty"`
}

type Packaging struct {
	DisposableItems *DisposableItems `json:"disposable_items,omitempty"`
}

type DisposableItems struct {
	ShouldInclude *bool `json:"should_include,omitempty"`
}
