// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	"github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	"github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	"github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
	"github.com/mentorly/mentorly_backend/internal/repo/user"
	"github.com/mentorly/mentorly_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilityexceptionMixin := schema.AvailabilityException{}.Mixin()
	availabilityexceptionMixinFields0 := availabilityexceptionMixin[0].Fields()
	_ = availabilityexceptionMixinFields0
	availabilityexceptionMixinFields1 := availabilityexceptionMixin[1].Fields()
	_ = availabilityexceptionMixinFields1
	availabilityexceptionFields := schema.AvailabilityException{}.Fields()
	_ = availabilityexceptionFields
	// availabilityexceptionDescCreatedAt is the schema descriptor for created_at field.
	availabilityexceptionDescCreatedAt := availabilityexceptionMixinFields1[0].Descriptor()
	// availabilityexception.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityexception.DefaultCreatedAt = availabilityexceptionDescCreatedAt.Default.(func() time.Time)
	// availabilityexceptionDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityexceptionDescUpdatedAt := availabilityexceptionMixinFields1[1].Descriptor()
	// availabilityexception.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityexception.DefaultUpdatedAt = availabilityexceptionDescUpdatedAt.Default.(func() time.Time)
	// availabilityexception.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityexception.UpdateDefaultUpdatedAt = availabilityexceptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityexceptionDescID is the schema descriptor for id field.
	availabilityexceptionDescID := availabilityexceptionMixinFields0[0].Descriptor()
	// availabilityexception.DefaultID holds the default value on creation for the id field.
	availabilityexception.DefaultID = availabilityexceptionDescID.Default.(func() uuid.UUID)
	dayavailabilityMixin := schema.DayAvailability{}.Mixin()
	dayavailabilityMixinFields0 := dayavailabilityMixin[0].Fields()
	_ = dayavailabilityMixinFields0
	dayavailabilityMixinFields1 := dayavailabilityMixin[1].Fields()
	_ = dayavailabilityMixinFields1
	dayavailabilityFields := schema.DayAvailability{}.Fields()
	_ = dayavailabilityFields
	// dayavailabilityDescCreatedAt is the schema descriptor for created_at field.
	dayavailabilityDescCreatedAt := dayavailabilityMixinFields1[0].Descriptor()
	// dayavailability.DefaultCreatedAt holds the default value on creation for the created_at field.
	dayavailability.DefaultCreatedAt = dayavailabilityDescCreatedAt.Default.(func() time.Time)
	// dayavailabilityDescUpdatedAt is the schema descriptor for updated_at field.
	dayavailabilityDescUpdatedAt := dayavailabilityMixinFields1[1].Descriptor()
	// dayavailability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dayavailability.DefaultUpdatedAt = dayavailabilityDescUpdatedAt.Default.(func() time.Time)
	// dayavailability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dayavailability.UpdateDefaultUpdatedAt = dayavailabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dayavailabilityDescID is the schema descriptor for id field.
	dayavailabilityDescID := dayavailabilityMixinFields0[0].Descriptor()
	// dayavailability.DefaultID holds the default value on creation for the id field.
	dayavailability.DefaultID = dayavailabilityDescID.Default.(func() uuid.UUID)
	mentorserviceMixin := schema.MentorService{}.Mixin()
	mentorserviceMixinFields0 := mentorserviceMixin[0].Fields()
	_ = mentorserviceMixinFields0
	mentorserviceMixinFields1 := mentorserviceMixin[1].Fields()
	_ = mentorserviceMixinFields1
	mentorserviceFields := schema.MentorService{}.Fields()
	_ = mentorserviceFields
	// mentorserviceDescCreatedAt is the schema descriptor for created_at field.
	mentorserviceDescCreatedAt := mentorserviceMixinFields1[0].Descriptor()
	// mentorservice.DefaultCreatedAt holds the default value on creation for the created_at field.
	mentorservice.DefaultCreatedAt = mentorserviceDescCreatedAt.Default.(func() time.Time)
	// mentorserviceDescUpdatedAt is the schema descriptor for updated_at field.
	mentorserviceDescUpdatedAt := mentorserviceMixinFields1[1].Descriptor()
	// mentorservice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mentorservice.DefaultUpdatedAt = mentorserviceDescUpdatedAt.Default.(func() time.Time)
	// mentorservice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mentorservice.UpdateDefaultUpdatedAt = mentorserviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mentorserviceDescID is the schema descriptor for id field.
	mentorserviceDescID := mentorserviceMixinFields0[0].Descriptor()
	// mentorservice.DefaultID holds the default value on creation for the id field.
	mentorservice.DefaultID = mentorserviceDescID.Default.(func() uuid.UUID)
	sessionrequestMixin := schema.SessionRequest{}.Mixin()
	sessionrequestMixinFields0 := sessionrequestMixin[0].Fields()
	_ = sessionrequestMixinFields0
	sessionrequestMixinFields1 := sessionrequestMixin[1].Fields()
	_ = sessionrequestMixinFields1
	sessionrequestFields := schema.SessionRequest{}.Fields()
	_ = sessionrequestFields
	// sessionrequestDescCreatedAt is the schema descriptor for created_at field.
	sessionrequestDescCreatedAt := sessionrequestMixinFields1[0].Descriptor()
	// sessionrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrequest.DefaultCreatedAt = sessionrequestDescCreatedAt.Default.(func() time.Time)
	// sessionrequestDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrequestDescUpdatedAt := sessionrequestMixinFields1[1].Descriptor()
	// sessionrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrequest.DefaultUpdatedAt = sessionrequestDescUpdatedAt.Default.(func() time.Time)
	// sessionrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrequest.UpdateDefaultUpdatedAt = sessionrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionrequestDescID is the schema descriptor for id field.
	sessionrequestDescID := sessionrequestMixinFields0[0].Descriptor()
	// sessionrequest.DefaultID holds the default value on creation for the id field.
	sessionrequest.DefaultID = sessionrequestDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[5].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// user.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	user.TimezoneValidator = userDescTimezone.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[7].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
