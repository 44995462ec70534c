// Package eats содержит схемы Uber Eats для загрузки меню и управления заказами.
// Клиент их не вызывает, только описывает тела запросов и ответов.
package eats

// MenuConfiguration - тело PUT /v2/eats/stores/{store_id}/menus.
type MenuConfiguration struct {
	Menus          []Menu          `json:"menus" validate:"required,min=1,dive"`
	Categories     []Category      `json:"categories" validate:"dive"`
	Items          []Item          `json:"items" validate:"dive"`
	ModifierGroups []ModifierGroup `json:"modifier_groups" validate:"dive"`
	MenuType       *string         `json:"menu_type,omitempty"`
}

type Menu struct {
	ID                  string                `json:"id" validate:"required"`
	Title               MultiLanguageText     `json:"title"`
	Subtitle            *MultiLanguageText    `json:"subtitle,omitempty"`
	ServiceAvailability []ServiceAvailability `json:"service_availability" validate:"dive"`
	CategoryIDs         []string              `json:"category_ids"`
}

// MultiLanguageText - переводы по языковому тегу, например "en_us".
type MultiLanguageText struct {
	Translations map[string]string `json:"translations"`
}

func Text(lang, value string) MultiLanguageText {
	return MultiLanguageText{Translations: map[string]string{lang: value}}
}

type ServiceAvailability struct {
	DayOfWeek   string       `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimePeriods []TimePeriod `json:"time_periods" validate:"dive"`
}

// TimePeriod - время в формате HH:MM.
type TimePeriod struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type Category struct {
	ID       string             `json:"id" validate:"required"`
	Title    MultiLanguageText  `json:"title"`
	Subtitle *MultiLanguageText `json:"subtitle,omitempty"`
	Entities []MenuEntity       `json:"entities" validate:"dive"`
}

type MenuEntity struct {
	ID   string `json:"id" validate:"required"`
	Type string `json:"type" validate:"required,oneof=ITEM MODIFIER_GROUP"`
}

type Item struct {
	ID               string                   `json:"id" validate:"required"`
	ExternalData     *string                  `json:"external_data,omitempty"`
	Title            MultiLanguageText        `json:"title"`
	Description      *MultiLanguageText       `json:"description,omitempty"`
	ImageURL         *string                  `json:"image_url,omitempty"`
	PriceInfo        PriceRules               `json:"price_info"`
	QuantityInfo     *QuantityConstraintRules `json:"quantity_info,omitempty"`
	SuspensionInfo   *SuspensionRules         `json:"suspension_info,omitempty"`
	ModifierGroupIDs *ModifierGroupsRules     `json:"modifier_group_ids,omitempty"`
	TaxInfo          TaxInfo                  `json:"tax_info"`
}

type ModifierGroup struct {
	ID              string                   `json:"id" validate:"required"`
	ExternalData    *string                  `json:"external_data,omitempty"`
	Title           MultiLanguageText        `json:"title"`
	QuantityInfo    *QuantityConstraintRules `json:"quantity_info,omitempty"`
	ModifierOptions []MenuEntity             `json:"modifier_options" validate:"dive"`
	DisplayType     *string                  `json:"display_type,omitempty"`
}

// PriceRules - цены в минимальных единицах валюты.
type PriceRules struct {
	Price            int              `json:"price" validate:"gte=0"`
	CorePrice        *int             `json:"core_price,omitempty"`
	ContainerDeposit *int             `json:"container_deposit,omitempty"`
	Overrides        []PriceOverride  `json:"overrides,omitempty"`
	PricedByUnit     *MeasurementUnit `json:"priced_by_unit,omitempty"`
}

type PriceOverride struct {
	ContextType  string `json:"context_type"`
	ContextValue string `json:"context_value"`
	Price        int    `json:"price"`
	CorePrice    *int   `json:"core_price,omitempty"`
}

type MeasurementUnit struct {
	MeasurementType string  `json:"measurement_type"`
	LengthUnit      *string `json:"length_unit,omitempty"`
	WeightUnit      *string `json:"weight_unit,omitempty"`
	VolumeUnit      *string `json:"volume_unit,omitempty"`
}

type QuantityConstraintRules struct {
	Quantity  QuantityConstraint           `json:"quantity"`
	Overrides []QuantityConstraintOverride `json:"overrides,omitempty"`
}

type QuantityConstraint struct {
	MinPermitted           *int  `json:"min_permitted,omitempty"`
	MaxPermitted           *int  `json:"max_permitted,omitempty"`
	IsMinPermittedOptional *bool `json:"is_min_permitted_optional,omitempty"`
	DefaultQuantity        *int  `json:"default_quantity,omitempty"`
	ChargeAbove            *int  `json:"charge_above,omitempty"`
	RefundUnder            *int  `json:"refund_under,omitempty"`
	MinPermittedUnique     *int  `json:"min_permitted_unique,omitempty"`
	MaxPermittedUnique     *int  `json:"max_permitted_unique,omitempty"`
}

type QuantityConstraintOverride struct {
	ContextType  string             `json:"context_type"`
	ContextValue string             `json:"context_value"`
	Quantity     QuantityConstraint `json:"quantity"`
}

type SuspensionRules struct {
	Suspension *Suspension          `json:"suspension,omitempty"`
	Overrides  []SuspensionOverride `json:"overrides,omitempty"`
}

// Suspension - SuspendUntil в unix секундах.
type Suspension struct {
	SuspendUntil *int64  `json:"suspend_until,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

type SuspensionOverride struct {
	ContextType  string     `json:"context_type"`
	ContextValue string     `json:"context_value"`
	Suspension   Suspension `json:"suspension"`
}

type ModifierGroupsRules struct {
	IDs       []string                 `json:"ids"`
	Overrides []ModifierGroupsOverride `json:"overrides,omitempty"`
}

type ModifierGroupsOverride struct {
	ContextType  string   `json:"context_type"`
	ContextValue string   `json:"context_value"`
	IDs          []string `json:"ids"`
}

type TaxInfo struct {
	TaxRate           *float64 `json:"tax_rate,omitempty"`
	VATRatePercentage *float64 `json:"vat_rate_percentage,omitempty"`
}

// UpdateItemConfiguration - тело POST /v2/eats/stores/{store_id}/menus/items/{item_id}.
type UpdateItemConfiguration struct {
	PriceInfo      *PriceRules      `json:"price_info,omitempty"`
	SuspensionInfo *SuspensionRules `json:"suspension_info,omitempty"`
	MenuType       *string          `json:"menu_type,omitempty"`
}
