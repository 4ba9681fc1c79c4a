package validation

// Default message texts. Keys are looked up by TranslatorFormatter; %{0} is
// the property text, %{1} the property value, the rest are rule arguments.
var (
	TextMandatory = NewText("validation.mandatory", "%{0} is required.")
	TextNone      = NewText("validation.none", "%{0} must not be specified.")
	TextInvalid   = NewText("validation.invalid", "%{0} is invalid.")

	TextMaxLength   = NewText("validation.max_length", "%{0} must not exceed %{2} characters in length.")
	TextMinLength   = NewText("validation.min_length", "%{0} must be at least %{2} characters in length.")
	TextExactLength = NewText("validation.exact_length", "%{0} must be exactly %{2} characters in length.")
	TextEmail       = NewText("validation.email", "%{0} is an invalid e-mail address.")
	TextUUID        = NewText("validation.uuid", "%{0} must be a valid UUID.")
	TextNilUUID     = NewText("validation.uuid_nil", "%{0} must not be an empty UUID.")

	TextURL          = NewText("validation.url", "%{0} must be a valid URL.")
	TextPhone        = NewText("validation.phone", "%{0} must be a valid phone number in international format.")
	TextIP           = NewText("validation.ip", "%{0} must be a valid IP address.")
	TextAlphanumeric = NewText("validation.alphanumeric", "%{0} must contain only letters and numbers.")
	TextSlug         = NewText("validation.slug", "%{0} must contain only lowercase letters, numbers and single hyphens.")
	TextPastDate     = NewText("validation.date_past", "%{0} must be in the past.")
	TextFutureDate   = NewText("validation.date_future", "%{0} must be in the future.")

	TextEqual              = NewText("validation.compare.equal", "%{0} must be equal to %{2}.")
	TextNotEqual           = NewText("validation.compare.not_equal", "%{0} must not be equal to %{2}.")
	TextLessThan           = NewText("validation.compare.less_than", "%{0} must be less than %{2}.")
	TextLessThanEqual      = NewText("validation.compare.less_than_equal", "%{0} must be less than or equal to %{2}.")
	TextGreaterThan        = NewText("validation.compare.greater_than", "%{0} must be greater than %{2}.")
	TextGreaterThanEqual   = NewText("validation.compare.greater_than_equal", "%{0} must be greater than or equal to %{2}.")
	TextBetween            = NewText("validation.between", "%{0} must be between %{2} and %{3}.")
	TextBetweenExclusive   = NewText("validation.between_exclusive", "%{0} must be greater than %{2} and less than %{3}.")
	TextNegative           = NewText("validation.negative", "%{0} must not be negative.")
	TextMaxDigits          = NewText("validation.max_digits", "%{0} must not exceed %{2} digits in total.")
	TextDecimalPlaces      = NewText("validation.decimal_places", "%{0} exceeds the maximum specified number of decimal places (%{2}).")
	TextImmutable          = NewText("validation.immutable", "%{0} is not allowed to change; please reset value.")
	TextExists             = NewText("validation.exists", "%{0} is not found; a valid value is required.")
	TextCollectionNullItem = NewText("validation.collection.null_item", "%{0} contains one or more items that are not specified.")
	TextDictionaryNullKey  = NewText("validation.dictionary.null_key", "%{0} contains one or more keys that are not specified.")
	TextDictionaryNullVal  = NewText("validation.dictionary.null_value", "%{0} contains one or more values that are not specified.")
	TextMinCount           = NewText("validation.min_count", "%{0} must have at least %{2} item(s).")
	TextMaxCount           = NewText("validation.max_count", "%{0} must not exceed %{2} item(s).")
	TextDuplicate          = NewText("validation.duplicate", "%{0} contains duplicates; %{2} value '%{3}' specified more than once.")
)
