package testutil

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/guildpoint/moderation/internal/entity"
	"github.com/guildpoint/moderation/pkg/idutil"
)

// SampleGuild returns a guild snapshot with randomized identity fields. The
// sample can be overwritten by non-zero fields of init.
func SampleGuild(init *entity.Guild) entity.Guild {
	sample := &entity.Guild{
		ID:      idutil.Generate(),
		Name:    uuid.NewString(),
		OwnerID: idutil.Generate(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func SampleRole(init *entity.Role) entity.Role {
	sample := &entity.Role{
		ID:   idutil.Generate(),
		Name: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func SampleMember(init *entity.Member) entity.Member {
	sample := &entity.Member{
		ID: idutil.Generate(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func SampleChannel(init *entity.Channel) entity.Channel {
	sample := &entity.Channel{
		ID:   idutil.Generate(),
		Name: uuid.NewString(),
		Type: entity.ChannelText,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func SampleThread(init *entity.Thread) entity.Thread {
	sample := &entity.Thread{
		ID:   idutil.Generate(),
		Name: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func SampleMessage(init *entity.Message) entity.Message {
	sample := &entity.Message{
		ID: idutil.Generate(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}
	return *sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
