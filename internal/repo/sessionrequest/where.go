// Code generated by ent, DO NOT EDIT.

package sessionrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldServiceID, v))
}

// MentorID applies equality check predicate on the "mentor_id" field. It's identical to MentorIDEQ.
func MentorID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldMentorID, v))
}

// MenteeID applies equality check predicate on the "mentee_id" field. It's identical to MenteeIDEQ.
func MenteeID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldMenteeID, v))
}

// CommunityID applies equality check predicate on the "community_id" field. It's identical to CommunityIDEQ.
func CommunityID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCommunityID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldDate, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStartHour, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStartMinute, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldDurationMinutes, v))
}

// Agenda applies equality check predicate on the "agenda" field. It's identical to AgendaEQ.
func Agenda(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldAgenda, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldServiceID, v))
}

// MentorIDEQ applies the EQ predicate on the "mentor_id" field.
func MentorIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldMentorID, v))
}

// MentorIDNEQ applies the NEQ predicate on the "mentor_id" field.
func MentorIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldMentorID, v))
}

// MentorIDIn applies the In predicate on the "mentor_id" field.
func MentorIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldMentorID, vs...))
}

// MentorIDNotIn applies the NotIn predicate on the "mentor_id" field.
func MentorIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldMentorID, vs...))
}

// MentorIDGT applies the GT predicate on the "mentor_id" field.
func MentorIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldMentorID, v))
}

// MentorIDGTE applies the GTE predicate on the "mentor_id" field.
func MentorIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldMentorID, v))
}

// MentorIDLT applies the LT predicate on the "mentor_id" field.
func MentorIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldMentorID, v))
}

// MentorIDLTE applies the LTE predicate on the "mentor_id" field.
func MentorIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldMentorID, v))
}

// MenteeIDEQ applies the EQ predicate on the "mentee_id" field.
func MenteeIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldMenteeID, v))
}

// MenteeIDNEQ applies the NEQ predicate on the "mentee_id" field.
func MenteeIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldMenteeID, v))
}

// MenteeIDIn applies the In predicate on the "mentee_id" field.
func MenteeIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldMenteeID, vs...))
}

// MenteeIDNotIn applies the NotIn predicate on the "mentee_id" field.
func MenteeIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldMenteeID, vs...))
}

// MenteeIDGT applies the GT predicate on the "mentee_id" field.
func MenteeIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldMenteeID, v))
}

// MenteeIDGTE applies the GTE predicate on the "mentee_id" field.
func MenteeIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldMenteeID, v))
}

// MenteeIDLT applies the LT predicate on the "mentee_id" field.
func MenteeIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldMenteeID, v))
}

// MenteeIDLTE applies the LTE predicate on the "mentee_id" field.
func MenteeIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldMenteeID, v))
}

// CommunityIDEQ applies the EQ predicate on the "community_id" field.
func CommunityIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCommunityID, v))
}

// CommunityIDNEQ applies the NEQ predicate on the "community_id" field.
func CommunityIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldCommunityID, v))
}

// CommunityIDIn applies the In predicate on the "community_id" field.
func CommunityIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldCommunityID, vs...))
}

// CommunityIDNotIn applies the NotIn predicate on the "community_id" field.
func CommunityIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldCommunityID, vs...))
}

// CommunityIDGT applies the GT predicate on the "community_id" field.
func CommunityIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldCommunityID, v))
}

// CommunityIDGTE applies the GTE predicate on the "community_id" field.
func CommunityIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldCommunityID, v))
}

// CommunityIDLT applies the LT predicate on the "community_id" field.
func CommunityIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldCommunityID, v))
}

// CommunityIDLTE applies the LTE predicate on the "community_id" field.
func CommunityIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldCommunityID, v))
}

// CommunityIDIsNil applies the IsNil predicate on the "community_id" field.
func CommunityIDIsNil() predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIsNull(FieldCommunityID))
}

// CommunityIDNotNil applies the NotNil predicate on the "community_id" field.
func CommunityIDNotNil() predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotNull(FieldCommunityID))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldDate, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldStartHour, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int8) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldStartMinute, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldDurationMinutes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// AgendaEQ applies the EQ predicate on the "agenda" field.
func AgendaEQ(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldAgenda, v))
}

// AgendaNEQ applies the NEQ predicate on the "agenda" field.
func AgendaNEQ(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldAgenda, v))
}

// AgendaIn applies the In predicate on the "agenda" field.
func AgendaIn(vs ...string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldAgenda, vs...))
}

// AgendaNotIn applies the NotIn predicate on the "agenda" field.
func AgendaNotIn(vs ...string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldAgenda, vs...))
}

// AgendaGT applies the GT predicate on the "agenda" field.
func AgendaGT(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldAgenda, v))
}

// AgendaGTE applies the GTE predicate on the "agenda" field.
func AgendaGTE(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldAgenda, v))
}

// AgendaLT applies the LT predicate on the "agenda" field.
func AgendaLT(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldAgenda, v))
}

// AgendaLTE applies the LTE predicate on the "agenda" field.
func AgendaLTE(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldAgenda, v))
}

// AgendaContains applies the Contains predicate on the "agenda" field.
func AgendaContains(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldContains(FieldAgenda, v))
}

// AgendaHasPrefix applies the HasPrefix predicate on the "agenda" field.
func AgendaHasPrefix(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldHasPrefix(FieldAgenda, v))
}

// AgendaHasSuffix applies the HasSuffix predicate on the "agenda" field.
func AgendaHasSuffix(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldHasSuffix(FieldAgenda, v))
}

// AgendaIsNil applies the IsNil predicate on the "agenda" field.
func AgendaIsNil() predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIsNull(FieldAgenda))
}

// AgendaNotNil applies the NotNil predicate on the "agenda" field.
func AgendaNotNil() predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotNull(FieldAgenda))
}

// AgendaEqualFold applies the EqualFold predicate on the "agenda" field.
func AgendaEqualFold(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEqualFold(FieldAgenda, v))
}

// AgendaContainsFold applies the ContainsFold predicate on the "agenda" field.
func AgendaContainsFold(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldContainsFold(FieldAgenda, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.NotPredicates(p))
}
