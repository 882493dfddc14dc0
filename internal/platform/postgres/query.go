package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/store"
)

// whereBuilder accumulates AND-ed predicates with positional parameters.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) param(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) eq(column string, v any) {
	w.clauses = append(w.clauses, fmt.Sprintf("%s = %s", column, w.param(v)))
}

func (w *whereBuilder) in(column string, values []string, negate bool) {
	if len(values) == 0 {
		return
	}
	params := make([]string, len(values))
	for i, v := range values {
		params[i] = w.param(v)
	}
	op := "IN"
	if negate {
		op = "NOT IN"
	}
	w.clauses = append(w.clauses, fmt.Sprintf("%s %s (%s)", column, op, strings.Join(params, ", ")))
}

func (w *whereBuilder) isNull(column string) {
	w.clauses = append(w.clauses, column+" IS NULL")
}

// String renders the WHERE clause, or "" when there are no predicates.
func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func jobCandidateWhere(f store.JobCandidateFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.JobID != uuid.Nil {
		w.eq("job_id", f.JobID)
	}
	if f.UserID != uuid.Nil {
		w.eq("user_id", f.UserID)
	}
	w.in("status", statusStrings(f.Statuses), false)
	w.in("status", statusStrings(f.StatusNotIn), true)
	if !f.IncludeDeleted {
		w.isNull("deleted_at")
	}
	return w
}

func resourceBookingWhere(f store.ResourceBookingFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.ProjectID != 0 {
		w.eq("project_id", f.ProjectID)
	}
	if f.JobID != uuid.Nil {
		w.eq("job_id", f.JobID)
	}
	if f.UserID != uuid.Nil {
		w.eq("user_id", f.UserID)
	}
	w.in("status", statusStrings(f.Statuses), false)
	w.in("status", statusStrings(f.StatusNotIn), true)
	if !f.IncludeDeleted {
		w.isNull("deleted_at")
	}
	return w
}

