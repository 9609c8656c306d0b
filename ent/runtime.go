// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/schema"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	salescontactFields := schema.SalesContact{}.Fields()
	_ = salescontactFields
	// salescontactDescDate is the schema descriptor for date field.
	salescontactDescDate := salescontactFields[1].Descriptor()
	// salescontact.DateValidator is a validator for the "date" field. It is called by the builders before save.
	salescontact.DateValidator = func() func(string) error {
		validators := salescontactDescDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(date string) error {
			for _, fn := range fns {
				if err := fn(date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// salescontactDescOccurredAt is the schema descriptor for occurred_at field.
	salescontactDescOccurredAt := salescontactFields[2].Descriptor()
	// salescontact.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	salescontact.DefaultOccurredAt = salescontactDescOccurredAt.Default.(func() time.Time)
	// salescontactDescManagerName is the schema descriptor for manager_name field.
	salescontactDescManagerName := salescontactFields[3].Descriptor()
	// salescontact.ManagerNameValidator is a validator for the "manager_name" field. It is called by the builders before save.
	salescontact.ManagerNameValidator = salescontactDescManagerName.Validators[0].(func(string) error)
	// salescontactDescPhone is the schema descriptor for phone field.
	salescontactDescPhone := salescontactFields[5].Descriptor()
	// salescontact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	salescontact.PhoneValidator = salescontactDescPhone.Validators[0].(func(string) error)
	// salescontactDescContactMethod is the schema descriptor for contact_method field.
	salescontactDescContactMethod := salescontactFields[6].Descriptor()
	// salescontact.DefaultContactMethod holds the default value on creation for the contact_method field.
	salescontact.DefaultContactMethod = salescontactDescContactMethod.Default.(string)
	// salescontactDescStatus is the schema descriptor for status field.
	salescontactDescStatus := salescontactFields[7].Descriptor()
	// salescontact.DefaultStatus holds the default value on creation for the status field.
	salescontact.DefaultStatus = salescontactDescStatus.Default.(string)
	// salescontactDescExternalCallID is the schema descriptor for external_call_id field.
	salescontactDescExternalCallID := salescontactFields[8].Descriptor()
	// salescontact.ExternalCallIDValidator is a validator for the "external_call_id" field. It is called by the builders before save.
	salescontact.ExternalCallIDValidator = salescontactDescExternalCallID.Validators[0].(func(string) error)
	// salescontactDescExternalSource is the schema descriptor for external_source field.
	salescontactDescExternalSource := salescontactFields[9].Descriptor()
	// salescontact.ExternalSourceValidator is a validator for the "external_source" field. It is called by the builders before save.
	salescontact.ExternalSourceValidator = salescontactDescExternalSource.Validators[0].(func(string) error)
	// salescontactDescCreatedAt is the schema descriptor for created_at field.
	salescontactDescCreatedAt := salescontactFields[10].Descriptor()
	// salescontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	salescontact.DefaultCreatedAt = salescontactDescCreatedAt.Default.(func() time.Time)
	// salescontactDescUpdatedAt is the schema descriptor for updated_at field.
	salescontactDescUpdatedAt := salescontactFields[11].Descriptor()
	// salescontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	salescontact.DefaultUpdatedAt = salescontactDescUpdatedAt.Default.(func() time.Time)
	// salescontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	salescontact.UpdateDefaultUpdatedAt = salescontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	syncrunFields := schema.SyncRun{}.Fields()
	_ = syncrunFields
	// syncrunDescStartDate is the schema descriptor for start_date field.
	syncrunDescStartDate := syncrunFields[1].Descriptor()
	// syncrun.StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	syncrun.StartDateValidator = func() func(string) error {
		validators := syncrunDescStartDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_date string) error {
			for _, fn := range fns {
				if err := fn(start_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syncrunDescEndDate is the schema descriptor for end_date field.
	syncrunDescEndDate := syncrunFields[2].Descriptor()
	// syncrun.EndDateValidator is a validator for the "end_date" field. It is called by the builders before save.
	syncrun.EndDateValidator = func() func(string) error {
		validators := syncrunDescEndDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(end_date string) error {
			for _, fn := range fns {
				if err := fn(end_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syncrunDescInserted is the schema descriptor for inserted field.
	syncrunDescInserted := syncrunFields[3].Descriptor()
	// syncrun.DefaultInserted holds the default value on creation for the inserted field.
	syncrun.DefaultInserted = syncrunDescInserted.Default.(int)
	// syncrun.InsertedValidator is a validator for the "inserted" field. It is called by the builders before save.
	syncrun.InsertedValidator = syncrunDescInserted.Validators[0].(func(int) error)
	// syncrunDescUpdated is the schema descriptor for updated field.
	syncrunDescUpdated := syncrunFields[4].Descriptor()
	// syncrun.DefaultUpdated holds the default value on creation for the updated field.
	syncrun.DefaultUpdated = syncrunDescUpdated.Default.(int)
	// syncrun.UpdatedValidator is a validator for the "updated" field. It is called by the builders before save.
	syncrun.UpdatedValidator = syncrunDescUpdated.Validators[0].(func(int) error)
	// syncrunDescSkipped is the schema descriptor for skipped field.
	syncrunDescSkipped := syncrunFields[5].Descriptor()
	// syncrun.DefaultSkipped holds the default value on creation for the skipped field.
	syncrun.DefaultSkipped = syncrunDescSkipped.Default.(int)
	// syncrun.SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	syncrun.SkippedValidator = syncrunDescSkipped.Validators[0].(func(int) error)
	// syncrunDescStartedAt is the schema descriptor for started_at field.
	syncrunDescStartedAt := syncrunFields[9].Descriptor()
	// syncrun.DefaultStartedAt holds the default value on creation for the started_at field.
	syncrun.DefaultStartedAt = syncrunDescStartedAt.Default.(func() time.Time)
	// syncrunDescFinishedAt is the schema descriptor for finished_at field.
	syncrunDescFinishedAt := syncrunFields[10].Descriptor()
	// syncrun.DefaultFinishedAt holds the default value on creation for the finished_at field.
	syncrun.DefaultFinishedAt = syncrunDescFinishedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
