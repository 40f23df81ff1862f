package i18n

// Translator retrieves localized messages for validation codes. data provides
// optional detail to embed in the message (for example, "min", "expected" or
// "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "typeof":
			if d := get("expected"); d != "" {
				return "型が不正です（期待: " + d + "）"
			}
			return "型が不正です"
		case "minLength":
			return withDetailJa("短すぎます", "minLength "+get("min"), get("min"))
		case "maxLength":
			return withDetailJa("長すぎます", "maxLength "+get("max"), get("max"))
		case "pattern":
			return withDetailJa("パターンに一致しません", get("pattern"), get("pattern"))
		case "minimum":
			return withDetailJa("小さすぎます", "minimum "+get("min"), get("min"))
		case "maximum":
			return withDetailJa("大きすぎます", "maximum "+get("max"), get("max"))
		case "minItems":
			return withDetailJa("要素が少なすぎます", "minItems "+get("min"), get("min"))
		case "maxItems":
			return withDetailJa("要素が多すぎます", "maxItems "+get("max"), get("max"))
		case "enum":
			return "次のいずれかである必要があります: " + get("allowed")
		case "instanceof":
			return withDetailJa("インスタンスではありません", get("expected"), get("expected"))
		case "required":
			return "必須プロパティが不足しています: " + get("keys")
		case "additionalProperties":
			return "未知のキーです: " + get("keys")
		case "cycle":
			return "ネストが深すぎます"
		case "invalid":
			return "不正な値です"
		case "anyOf":
			return "いずれの型にも一致しません: " + get("types")
		}
	default: // "en"
		switch code {
		case "typeof":
			if d := get("expected"); d != "" {
				return "invalid type: expected " + d
			}
			return "invalid type"
		case "minLength":
			return withDetail("too short", "minLength "+get("min"), get("min"))
		case "maxLength":
			return withDetail("too long", "maxLength "+get("max"), get("max"))
		case "pattern":
			return withDetail("does not match pattern", get("pattern"), get("pattern"))
		case "minimum":
			return withDetail("too small", "minimum "+get("min"), get("min"))
		case "maximum":
			return withDetail("too large", "maximum "+get("max"), get("max"))
		case "minItems":
			return withDetail("too few items", "minItems "+get("min"), get("min"))
		case "maxItems":
			return withDetail("too many items", "maxItems "+get("max"), get("max"))
		case "enum":
			return "must be one of: " + get("allowed")
		case "instanceof":
			return withDetail("not an instance", "of "+get("expected"), get("expected"))
		case "required":
			return "required properties missing: " + get("keys")
		case "additionalProperties":
			return "unknown properties: " + get("keys")
		case "cycle":
			return "max nesting depth exceeded"
		case "invalid":
			return "is invalid"
		case "anyOf":
			return "must match any of: " + get("types")
		}
	}
	return code
}

func withDetail(base, detail, present string) string {
	if present == "" {
		return base
	}
	return base + " (" + detail + ")"
}

func withDetailJa(base, detail, present string) string {
	if present == "" {
		return base
	}
	return base + "（" + detail + "）"
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
