package reservation

// Messages shown inline next to the offending input.
var messages = map[Field]map[Kind]string{
	FieldName: {
		KindRequired: "名前を入力してください。",
	},
	FieldFurigana: {
		KindRequired: "フリガナを入力してください。",
		KindFormat:   "フリガナはカタカナで入力してください。",
	},
	FieldEmail: {
		KindRequired: "メールアドレスを入力してください。",
		KindFormat:   "有効なメールアドレスを入力してください。",
	},
	FieldPhone: {
		KindRequired: "電話番号を入力してください。",
		KindFormat:   "有効な電話番号を入力してください。",
	},
	FieldDate: {
		KindRequired: "ご来店日を選択してください。",
	},
	FieldDetails: {
		KindRequired: "お問い合わせ内容を入力してください。",
	},
	FieldCategory: {
		KindRequired: "カテゴリーを選択してください。",
	},
	FieldGuests: {
		KindRequired: "ご来店人数を入力してください",
	},
	FieldConsent: {
		KindRequired: "プライバシーポリシーに同意してください。",
	},
}

func newValidationError(field Field, kind Kind) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: messages[field][kind],
	}
}
