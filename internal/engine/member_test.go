package engine

import (
	"testing"

	"github.com/guildpoint/moderation/config"
	"github.com/guildpoint/moderation/internal/entity"
	"github.com/guildpoint/moderation/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestEngine_Kickable(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	peer := testutil.SampleMember(&entity.Member{
		GuildID: f.Guild.ID,
		RoleIDs: []entity.ID{f.ModRole.ID},
	})
	stranger := testutil.SampleMember(&entity.Member{GuildID: testutil.SampleGuild(nil).ID})

	type args struct {
		target    *entity.Member
		moderator *entity.Member
	}
	tests := []struct {
		name string
		args args
		want Verdict
	}{
		{
			name: "happy case",
			args: args{target: f.Member, moderator: f.Moderator},
			want: Verdict{Allowed: true, Reason: ReasonAllowed},
		},
		{
			name: "missing permission",
			args: args{target: f.Moderator, moderator: f.Member},
			want: Verdict{Reason: ReasonInsufficientPermission},
		},
		{
			name: "equal rank",
			args: args{target: &peer, moderator: f.Moderator},
			want: Verdict{Reason: ReasonHierarchyViolation},
		},
		{
			name: "self target",
			args: args{target: f.Moderator, moderator: f.Moderator},
			want: Verdict{Reason: ReasonSelfAction},
		},
		{
			name: "owner target is immune",
			args: args{target: f.Owner, moderator: f.Moderator},
			want: Verdict{Reason: ReasonOwnerImmune},
		},
		{
			name: "owner moderator bypasses everything",
			args: args{target: f.Admin, moderator: f.Owner},
			want: Verdict{Allowed: true, Reason: ReasonOwnerBypass},
		},
		{
			name: "administrator target is immune",
			args: args{target: f.Admin, moderator: f.Moderator},
			want: Verdict{Reason: ReasonAdminImmune},
		},
		{
			name: "target already left",
			args: args{target: nil, moderator: f.Moderator},
			want: Verdict{Reason: ReasonStaleEntity},
		},
		{
			name: "target from another guild",
			args: args{target: &stranger, moderator: f.Moderator},
			want: Verdict{Reason: ReasonStaleEntity},
		},
		{
			name: "moderator from another guild",
			args: args{target: f.Member, moderator: &stranger},
			want: Verdict{Reason: ReasonCrossGuild},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Kickable(testutil.MockContext(), tt.args.target, tt.args.moderator, f.Guild)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Kickable_InvalidCallShape(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	_, err := e.Kickable(testutil.MockContext(), f.Member, nil, f.Guild)
	require.Error(t, err)

	_, err = e.Kickable(testutil.MockContext(), f.Member, f.Moderator, nil)
	require.Error(t, err)
}

func TestEngine_Bannable(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	got, err := e.Bannable(testutil.MockContext(), f.Member, f.Moderator, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Allowed: true, Reason: ReasonAllowed}, got)

	// BanMembers is the gate, KickMembers is not enough.
	kicker := testutil.SampleRole(&entity.Role{
		GuildID:     f.Guild.ID,
		Position:    6,
		Permissions: entity.PermissionSet(0).Add(entity.KickMembers),
	})
	f.Guild.Roles = []entity.Role{f.MemberRole, f.ModRole, kicker, f.AdminRole}
	holder := testutil.SampleMember(&entity.Member{
		GuildID: f.Guild.ID,
		RoleIDs: []entity.ID{kicker.ID},
	})

	got, err = e.Bannable(testutil.MockContext(), f.Member, &holder, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Reason: ReasonInsufficientPermission}, got)
}

func TestEngine_Mutable(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	got, err := e.Mutable(testutil.MockContext(), f.Member, f.Moderator, f.Guild)
	require.NoError(t, err)
	require.True(t, got.Allowed)

	// The owner can never be timed out.
	got, err = e.Mutable(testutil.MockContext(), f.Owner, f.Moderator, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Reason: ReasonOwnerImmune}, got)
}

func TestEngine_Manageable(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	got, err := e.Manageable(testutil.MockContext(), f.Member, f.Moderator, f.Guild)
	require.NoError(t, err)
	require.True(t, got.Allowed)

	got, err = e.Manageable(testutil.MockContext(), f.Moderator, f.Member, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Reason: ReasonInsufficientPermission}, got)
}

func TestEngine_AdminBypassesHierarchy(t *testing.T) {
	f := testutil.NewFixture()

	// A second administrator: equal rank, so hierarchy denies by default.
	rival := testutil.SampleMember(&entity.Member{
		GuildID: f.Guild.ID,
		RoleIDs: []entity.ID{f.AdminRole.ID},
	})

	strict := New(config.PolicyConfigs{})
	got, err := strict.Manageable(testutil.MockContext(), &rival, f.Admin, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Reason: ReasonHierarchyViolation}, got)

	lenient := New(config.PolicyConfigs{AdminBypassesHierarchy: true})
	got, err = lenient.Manageable(testutil.MockContext(), &rival, f.Admin, f.Guild)
	require.NoError(t, err)
	require.Equal(t, Verdict{Allowed: true, Reason: ReasonAllowed}, got)
}

func TestEngine_Idempotence(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})
	ctx := testutil.MockContext()

	first, err := e.Kickable(ctx, f.Member, f.Moderator, f.Guild)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Kickable(ctx, f.Member, f.Moderator, f.Guild)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEngine_VoiceActions(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	voice := testutil.SampleChannel(&entity.Channel{
		GuildID: f.Guild.ID,
		Type:    entity.ChannelVoice,
	})

	t.Run("happy case with scope", func(t *testing.T) {
		got, err := e.VoiceMoveable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &voice)
		require.NoError(t, err)
		require.True(t, got.Allowed)

		got, err = e.VoiceMutable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &voice)
		require.NoError(t, err)
		require.True(t, got.Allowed)

		got, err = e.VoiceDeafenable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &voice)
		require.NoError(t, err)
		require.True(t, got.Allowed)
	})

	t.Run("no scope resolves guild-wide", func(t *testing.T) {
		got, err := e.VoiceMoveable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, nil)
		require.NoError(t, err)
		require.True(t, got.Allowed)
	})

	t.Run("scope deny wins", func(t *testing.T) {
		denied := testutil.SampleChannel(&entity.Channel{
			GuildID: f.Guild.ID,
			Type:    entity.ChannelVoice,
			Overwrites: []entity.Overwrite{{
				TargetID: f.ModRole.ID,
				Type:     entity.OverwriteRole,
				Deny:     entity.PermissionSet(0).Add(entity.MoveMembers),
			}},
		})

		got, err := e.VoiceMoveable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &denied)
		require.NoError(t, err)
		require.Equal(t, Verdict{Reason: ReasonInsufficientPermission}, got)
	})

	t.Run("scope requires Connect", func(t *testing.T) {
		noConnect := testutil.SampleChannel(&entity.Channel{
			GuildID: f.Guild.ID,
			Type:    entity.ChannelVoice,
			Overwrites: []entity.Overwrite{{
				TargetID: f.ModRole.ID,
				Type:     entity.OverwriteRole,
				Deny:     entity.PermissionSet(0).Add(entity.Connect),
			}},
		})

		got, err := e.VoiceMutable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &noConnect)
		require.NoError(t, err)
		require.Equal(t, Verdict{Reason: ReasonInsufficientPermission}, got)
	})

	t.Run("text channel is not a voice scope", func(t *testing.T) {
		text := testutil.SampleChannel(&entity.Channel{GuildID: f.Guild.ID})
		_, err := e.VoiceMoveable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &text)
		require.Error(t, err)
	})

	t.Run("owner bypass skips the scope", func(t *testing.T) {
		denied := testutil.SampleChannel(&entity.Channel{
			GuildID: f.Guild.ID,
			Type:    entity.ChannelVoice,
			Overwrites: []entity.Overwrite{{
				TargetID: f.Owner.ID,
				Type:     entity.OverwriteMember,
				Deny:     entity.AllPermissions,
			}},
		})

		got, err := e.VoiceMoveable(testutil.MockContext(), f.Member, f.Owner, f.Guild, &denied)
		require.NoError(t, err)
		require.Equal(t, Verdict{Allowed: true, Reason: ReasonOwnerBypass}, got)
	})
}

func TestEngine_StageSpeakable(t *testing.T) {
	f := testutil.NewFixture()
	e := New(config.PolicyConfigs{})

	stage := testutil.SampleChannel(&entity.Channel{
		GuildID: f.Guild.ID,
		Type:    entity.ChannelStage,
	})

	t.Run("mute authority in the stage", func(t *testing.T) {
		got, err := e.StageSpeakable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &stage, nil)
		require.NoError(t, err)
		require.True(t, got.Allowed)
	})

	t.Run("request-to-speak authority is enough", func(t *testing.T) {
		host := testutil.SampleMember(&entity.Member{
			GuildID: f.Guild.ID,
			RoleIDs: []entity.ID{f.MemberRole.ID},
		})
		granted := testutil.SampleChannel(&entity.Channel{
			GuildID: f.Guild.ID,
			Type:    entity.ChannelStage,
			Overwrites: []entity.Overwrite{{
				TargetID: host.ID,
				Type:     entity.OverwriteMember,
				Allow:    entity.PermissionSet(0).Add(entity.RequestToSpeak),
			}},
		})

		// The target sits below the everyone tier only if the host holds a
		// role; a plain member at position 1 against a roleless target.
		roleless := testutil.SampleMember(&entity.Member{GuildID: f.Guild.ID})
		got, err := e.StageSpeakable(testutil.MockContext(), &roleless, &host, f.Guild, &granted, nil)
		require.NoError(t, err)
		require.Equal(t, Verdict{Allowed: true, Reason: ReasonAllowed}, got)
	})

	t.Run("no authority", func(t *testing.T) {
		roleless := testutil.SampleMember(&entity.Member{GuildID: f.Guild.ID})
		got, err := e.StageSpeakable(testutil.MockContext(), &roleless, f.Member, f.Guild, &stage, nil)
		require.NoError(t, err)
		require.Equal(t, Verdict{Reason: ReasonInsufficientPermission}, got)
	})

	t.Run("same gate when revoking a live speaker", func(t *testing.T) {
		state := entity.VoiceState{MemberID: f.Member.ID, ChannelID: stage.ID, Suppressed: false}
		got, err := e.StageSpeakable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &stage, &state)
		require.NoError(t, err)
		require.True(t, got.Allowed)
	})

	t.Run("voice state from another channel is stale", func(t *testing.T) {
		elsewhere := testutil.SampleChannel(&entity.Channel{GuildID: f.Guild.ID, Type: entity.ChannelVoice})
		state := entity.VoiceState{MemberID: f.Member.ID, ChannelID: elsewhere.ID}
		got, err := e.StageSpeakable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, &stage, &state)
		require.NoError(t, err)
		require.Equal(t, Verdict{Reason: ReasonStaleEntity}, got)
	})

	t.Run("missing stage is a call error", func(t *testing.T) {
		_, err := e.StageSpeakable(testutil.MockContext(), f.Member, f.Moderator, f.Guild, nil, nil)
		require.Error(t, err)
	})
}

func TestEngine_BotVerified(t *testing.T) {
	e := New(config.PolicyConfigs{})

	verified := testutil.SampleMember(&entity.Member{IsBot: true, IsVerifiedBot: true})
	plain := testutil.SampleMember(&entity.Member{IsBot: true})
	human := testutil.SampleMember(nil)

	require.True(t, e.BotVerified(&verified))
	require.False(t, e.BotVerified(&plain))
	require.False(t, e.BotVerified(&human))
	require.False(t, e.BotVerified(nil))
}
