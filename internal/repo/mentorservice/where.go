// Code generated by ent, DO NOT EDIT.

package mentorservice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldDeletedAt, v))
}

// MentorID applies equality check predicate on the "mentor_id" field. It's identical to MentorIDEQ.
func MentorID(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldMentorID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldDescription, v))
}

// SessionMinutes applies equality check predicate on the "session_minutes" field. It's identical to SessionMinutesEQ.
func SessionMinutes(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldSessionMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.MentorService {
	return predicate.MentorService(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.MentorService {
	return predicate.MentorService(sql.FieldNotNull(FieldDeletedAt))
}

// MentorIDEQ applies the EQ predicate on the "mentor_id" field.
func MentorIDEQ(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldMentorID, v))
}

// MentorIDNEQ applies the NEQ predicate on the "mentor_id" field.
func MentorIDNEQ(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldMentorID, v))
}

// MentorIDIn applies the In predicate on the "mentor_id" field.
func MentorIDIn(vs ...uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldMentorID, vs...))
}

// MentorIDNotIn applies the NotIn predicate on the "mentor_id" field.
func MentorIDNotIn(vs ...uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldMentorID, vs...))
}

// MentorIDGT applies the GT predicate on the "mentor_id" field.
func MentorIDGT(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldMentorID, v))
}

// MentorIDGTE applies the GTE predicate on the "mentor_id" field.
func MentorIDGTE(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldMentorID, v))
}

// MentorIDLT applies the LT predicate on the "mentor_id" field.
func MentorIDLT(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldMentorID, v))
}

// MentorIDLTE applies the LTE predicate on the "mentor_id" field.
func MentorIDLTE(v uuid.UUID) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldMentorID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldKind, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MentorService {
	return predicate.MentorService(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MentorService {
	return predicate.MentorService(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MentorService {
	return predicate.MentorService(sql.FieldContainsFold(FieldDescription, v))
}

// SessionMinutesEQ applies the EQ predicate on the "session_minutes" field.
func SessionMinutesEQ(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldEQ(FieldSessionMinutes, v))
}

// SessionMinutesNEQ applies the NEQ predicate on the "session_minutes" field.
func SessionMinutesNEQ(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldNEQ(FieldSessionMinutes, v))
}

// SessionMinutesIn applies the In predicate on the "session_minutes" field.
func SessionMinutesIn(vs ...int) predicate.MentorService {
	return predicate.MentorService(sql.FieldIn(FieldSessionMinutes, vs...))
}

// SessionMinutesNotIn applies the NotIn predicate on the "session_minutes" field.
func SessionMinutesNotIn(vs ...int) predicate.MentorService {
	return predicate.MentorService(sql.FieldNotIn(FieldSessionMinutes, vs...))
}

// SessionMinutesGT applies the GT predicate on the "session_minutes" field.
func SessionMinutesGT(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldGT(FieldSessionMinutes, v))
}

// SessionMinutesGTE applies the GTE predicate on the "session_minutes" field.
func SessionMinutesGTE(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldGTE(FieldSessionMinutes, v))
}

// SessionMinutesLT applies the LT predicate on the "session_minutes" field.
func SessionMinutesLT(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldLT(FieldSessionMinutes, v))
}

// SessionMinutesLTE applies the LTE predicate on the "session_minutes" field.
func SessionMinutesLTE(v int) predicate.MentorService {
	return predicate.MentorService(sql.FieldLTE(FieldSessionMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MentorService) predicate.MentorService {
	return predicate.MentorService(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MentorService) predicate.MentorService {
	return predicate.MentorService(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MentorService) predicate.MentorService {
	return predicate.MentorService(sql.NotPredicates(p))
}
