package service

import (
	"fmt"
	"strings"

	"job-board/internal/patch"
)

// 各实体允许 PATCH 的列。身份键 (handle / username / id) 和外键 company 不在其中。
var (
	companiesTable = patch.Table{
		Name:      "companies",
		KeyColumn: "handle",
		Columns: map[string]patch.Kind{
			"name":     patch.KindString,
			"logo":     patch.KindNullableString,
			"email":    patch.KindString,
			"password": patch.KindString,
		},
	}

	usersTable = patch.Table{
		Name:      "users",
		KeyColumn: "username",
		Columns: map[string]patch.Kind{
			"first_name":      patch.KindString,
			"last_name":       patch.KindString,
			"email":           patch.KindString,
			"photo":           patch.KindNullableString,
			"current_company": patch.KindNullableString,
			"password":        patch.KindString,
		},
	}

	jobsTable = patch.Table{
		Name:      "jobs",
		KeyColumn: "id",
		Columns: map[string]patch.Kind{
			"title":  patch.KindString,
			"salary": patch.KindInt,
			"equity": patch.KindFloat,
		},
	}
)

// requiredText 列更新时不能置为空串。
var requiredText = map[string]bool{
	"name": true, "email": true, "first_name": true, "last_name": true, "title": true,
}

// validateAssignments 检查 normalize 之后的值域。
func validateAssignments(stmt patch.Statement) error {
	for _, a := range stmt.Assignments {
		switch v := a.Value.(type) {
		case string:
			if requiredText[a.Column] && strings.TrimSpace(v) == "" {
				return fmt.Errorf("%w: %s cannot be empty", ErrBadRequest, a.Column)
			}
		case int64:
			if a.Column == "salary" && v < 0 {
				return fmt.Errorf("%w: salary cannot be negative", ErrBadRequest)
			}
		case float64:
			if a.Column == "equity" && (v < 0 || v > 1) {
				return fmt.Errorf("%w: equity must be between 0 and 1", ErrBadRequest)
			}
		}
	}
	return nil
}
