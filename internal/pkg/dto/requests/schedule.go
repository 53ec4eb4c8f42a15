package requests

// UpsertDay patches one weekday's window inside an open editor draft. Nil
// times are left untouched; empty strings clear the field.
type UpsertDay struct {
	DayOfWeek int     `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

type ToggleDay struct {
	DayOfWeek int  `json:"dayOfWeek" validate:"gte=0,lte=6"`
	Enabled   bool `json:"enabled"`
}

type ApplyTemplate struct {
	TemplateKey string `json:"templateKey" validate:"required"`
}

type CopyToAllDays struct {
	SourceDayOfWeek int `json:"sourceDayOfWeek" validate:"gte=0,lte=6"`
}

type ClearDay struct {
	DayOfWeek int `json:"dayOfWeek" validate:"gte=0,lte=6"`
}

// ResolveConfirmation answers a pending confirmation prompt. Accept=false is
// an unconditional no-op, as is letting the token expire.
type ResolveConfirmation struct {
	Token  string `json:"token" validate:"required"`
	Accept bool   `json:"accept"`
}
