package domain

// TransformationKind selects which form fields and configuration sub-keys are active.
type TransformationKind string

const (
	KindFill             TransformationKind = "fill"
	KindRecolor          TransformationKind = "recolor"
	KindRemove           TransformationKind = "remove"
	KindRestore          TransformationKind = "restore"
	KindRemoveBackground TransformationKind = "removeBackground"
)

func (k TransformationKind) String() string { return string(k) }

func (k TransformationKind) IsValid() bool {
	switch k {
	case KindFill, KindRecolor, KindRemove, KindRestore, KindRemoveBackground:
		return true
	}
	return false
}

// FormField identifies an editable form field of a transformation session.
type FormField string

const (
	FieldTitle       FormField = "title"
	FieldAspectRatio FormField = "aspectRatio"
	FieldColor       FormField = "color"
	FieldPrompt      FormField = "prompt"
	FieldPublicID    FormField = "publicId"
)

func (f FormField) String() string { return string(f) }

// FormMode tells Save whether to create a new record or update an existing one.
type FormMode string

const (
	FormModeAdd    FormMode = "Add"
	FormModeUpdate FormMode = "Update"
)

func (m FormMode) String() string { return string(m) }

func (m FormMode) IsValid() bool {
	return m == FormModeAdd || m == FormModeUpdate
}

// CreditReason records why a credit balance changed.
type CreditReason string

const (
	CreditReasonApply CreditReason = "transformation_apply"
	CreditReasonGrant CreditReason = "grant"
)

func (r CreditReason) String() string { return string(r) }

func (r CreditReason) IsValid() bool {
	switch r {
	case CreditReasonApply, CreditReasonGrant:
		return true
	}
	return false
}
