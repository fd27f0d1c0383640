// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilityExceptionsColumns holds the columns for the "availability_exceptions" table.
	AvailabilityExceptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mentor_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "duration_minutes", Type: field.TypeInt},
	}
	// AvailabilityExceptionsTable holds the schema information for the "availability_exceptions" table.
	AvailabilityExceptionsTable = &schema.Table{
		Name:       "availability_exceptions",
		Columns:    AvailabilityExceptionsColumns,
		PrimaryKey: []*schema.Column{AvailabilityExceptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityexception_service_id_date",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityExceptionsColumns[4], AvailabilityExceptionsColumns[5]},
			},
			{
				Name:    "availabilityexception_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityExceptionsColumns[3]},
			},
		},
	}
	// DayAvailabilitiesColumns holds the columns for the "day_availabilities" table.
	DayAvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mentor_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "duration_minutes", Type: field.TypeInt},
	}
	// DayAvailabilitiesTable holds the schema information for the "day_availabilities" table.
	DayAvailabilitiesTable = &schema.Table{
		Name:       "day_availabilities",
		Columns:    DayAvailabilitiesColumns,
		PrimaryKey: []*schema.Column{DayAvailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dayavailability_service_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{DayAvailabilitiesColumns[4], DayAvailabilitiesColumns[5]},
			},
			{
				Name:    "dayavailability_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{DayAvailabilitiesColumns[3]},
			},
		},
	}
	// MentorServicesColumns holds the columns for the "mentor_services" table.
	MentorServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "mentor_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"mentorship", "mock_interview", "cv_review", "consultation"}, Default: "mentorship"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_minutes", Type: field.TypeInt},
	}
	// MentorServicesTable holds the schema information for the "mentor_services" table.
	MentorServicesTable = &schema.Table{
		Name:       "mentor_services",
		Columns:    MentorServicesColumns,
		PrimaryKey: []*schema.Column{MentorServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentorservice_mentor_id",
				Unique:  false,
				Columns: []*schema.Column{MentorServicesColumns[4]},
			},
		},
	}
	// SessionRequestsColumns holds the columns for the "session_requests" table.
	SessionRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "mentor_id", Type: field.TypeUUID},
		{Name: "mentee_id", Type: field.TypeUUID},
		{Name: "community_id", Type: field.TypeUUID, Nullable: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "rejected", "cancelled"}, Default: "pending"},
		{Name: "agenda", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// SessionRequestsTable holds the schema information for the "session_requests" table.
	SessionRequestsTable = &schema.Table{
		Name:       "session_requests",
		Columns:    SessionRequestsColumns,
		PrimaryKey: []*schema.Column{SessionRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrequest_mentor_id_service_id_date_start_hour_start_minute",
				Unique:  true,
				Columns: []*schema.Column{SessionRequestsColumns[4], SessionRequestsColumns[3], SessionRequestsColumns[7], SessionRequestsColumns[8], SessionRequestsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'accepted')",
				},
			},
			{
				Name:    "sessionrequest_mentee_id",
				Unique:  false,
				Columns: []*schema.Column{SessionRequestsColumns[5]},
			},
			{
				Name:    "sessionrequest_mentor_id_date",
				Unique:  false,
				Columns: []*schema.Column{SessionRequestsColumns[4], SessionRequestsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"mentee", "mentor", "admin"}, Default: "mentee"},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "Etc/UTC"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilityExceptionsTable,
		DayAvailabilitiesTable,
		MentorServicesTable,
		SessionRequestsTable,
		UsersTable,
	}
)

func init() {
}
