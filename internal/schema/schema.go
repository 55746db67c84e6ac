package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 标识一个可写实体
type Kind string

const (
	KindUser             Kind = "user"
	KindPersonalInfo     Kind = "personalInfo"
	KindSkill            Kind = "skill"
	KindProject          Kind = "project"
	KindProjectTag       Kind = "projectTag"
	KindContactMessage   Kind = "contactMessage"
	KindTechnologySlider Kind = "technologySlider"
)

// ErrUnknownKind 在传入未登记的实体类别时返回
var ErrUnknownKind = errors.New("unknown entity kind")

type fieldType int

const (
	stringField fieldType = iota
	intField
	boolField
)

// fieldRule 描述写入载荷中的一个字段
// required=false 的字段可以缺省（数据库默认值或可空列）

type fieldRule struct {
	name     string
	typ      fieldType
	required bool
	nullable bool
}

// insertRules 列出每类实体允许写入的字段
// 服务端生成的字段（id、时间戳、isRead）不在其中，提交了也会被剥离
var insertRules = map[Kind][]fieldRule{
	KindUser: {
		{name: "username", typ: stringField, required: true},
		{name: "password", typ: stringField, required: true},
	},
	KindPersonalInfo: {
		{name: "name", typ: stringField, required: true},
		{name: "title", typ: stringField, required: true},
		{name: "description", typ: stringField, required: true},
		{name: "phone", typ: stringField, required: true},
		{name: "email", typ: stringField, required: true},
		{name: "whatsapp", typ: stringField, required: true},
		{name: "yearsExperience", typ: intField, required: true},
		{name: "projectsCompleted", typ: intField, required: true},
		{name: "technologiesCount", typ: intField, required: true},
		{name: "clientSatisfaction", typ: intField, required: true},
		{name: "about", typ: stringField, required: true},
		{name: "journey", typ: stringField, required: true},
		{name: "education", typ: stringField, required: true},
		{name: "educationFocus", typ: stringField, required: true},
		{name: "experience", typ: stringField, required: true},
		{name: "experienceCompany", typ: stringField, required: true},
		{name: "experienceDescription", typ: stringField, required: true},
	},
	KindSkill: {
		{name: "name", typ: stringField, required: true},
		{name: "category", typ: stringField, required: true},
		{name: "percentage", typ: intField, required: true},
		{name: "color", typ: stringField, required: true},
		{name: "iconName", typ: stringField, required: true},
		{name: "displayOrder", typ: intField},
		{name: "isActive", typ: boolField},
	},
	KindProject: {
		{name: "title", typ: stringField, required: true},
		{name: "description", typ: stringField, required: true},
		{name: "imageUrl", typ: stringField, nullable: true},
		{name: "iconName", typ: stringField, nullable: true},
		{name: "demoLink", typ: stringField, nullable: true},
		{name: "codeLink", typ: stringField, nullable: true},
		{name: "displayOrder", typ: intField},
		{name: "isActive", typ: boolField},
	},
	KindProjectTag: {
		{name: "projectId", typ: intField, required: true},
		{name: "label", typ: stringField, required: true},
		{name: "color", typ: stringField, required: true},
	},
	KindContactMessage: {
		{name: "firstName", typ: stringField, required: true},
		{name: "lastName", typ: stringField, required: true},
		{name: "email", typ: stringField, required: true},
		{name: "subject", typ: stringField, required: true},
		{name: "message", typ: stringField, required: true},
	},
	KindTechnologySlider: {
		{name: "name", typ: stringField, required: true},
		{name: "iconName", typ: stringField, required: true},
		{name: "color", typ: stringField, required: true},
		{name: "displayOrder", typ: intField},
		{name: "isActive", typ: boolField},
	},
}

// FieldError 描述单个字段的校验失败原因
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 汇总一次校验中所有失败的字段
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validate 按实体类别校验原始载荷
// 返回的 map 只保留登记过的字段，未知键与服务端生成的键会被剥离
// 所有失败的字段会一次性列出，而不是在第一个错误处停下
func Validate(kind Kind, payload map[string]any) (map[string]any, error) {
	rules, ok := insertRules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	cleaned := make(map[string]any, len(rules))
	var fieldErrs []FieldError

	for _, rule := range rules {
		value, present := payload[rule.name]
		if !present || value == nil {
			if rule.required {
				fieldErrs = append(fieldErrs, FieldError{Field: rule.name, Reason: "required"})
				continue
			}
			if present && rule.nullable {
				cleaned[rule.name] = nil
			}
			continue
		}

		if !matchesType(rule.typ, value) {
			fieldErrs = append(fieldErrs, FieldError{Field: rule.name, Reason: "wrong type"})
			continue
		}

		cleaned[rule.name] = value
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	return cleaned, nil
}

// matchesType 检查 JSON 解码后的值是否符合期望的原始类型
// encoding/json 把数字统一解码为 float64，这里接受整数值的 float64
func matchesType(typ fieldType, value any) bool {
	switch typ {
	case stringField:
		_, ok := value.(string)
		return ok
	case boolField:
		_, ok := value.(bool)
		return ok
	case intField:
		switch n := value.(type) {
		case float64:
			return n == float64(int64(n))
		case int:
			return true
		default:
			return false
		}
	default:
		return false
	}
}
