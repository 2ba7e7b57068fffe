package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/ports/driven"
)

func TestGraphSink_RecordsInOrder(t *testing.T) {
	sink := NewGraphSink()
	ctx := context.Background()

	require.NoError(t, sink.AddEntity(ctx, domain.NewEntity(domain.EntityCompany, "552100554")))
	require.NoError(t, sink.AddEntity(ctx, domain.NewEntity(domain.EntityPerson, "Jean Dupont")))
	sink.AddMessage(ctx, driven.SeverityWarning, "1 record(s) could not be processed")

	entities := sink.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "552100554", entities[0].Value)
	assert.Equal(t, "Jean Dupont", entities[1].Value)

	people := sink.EntitiesOf(domain.EntityPerson)
	require.Len(t, people, 1)
	assert.Equal(t, domain.EntityPerson, people[0].Kind)

	assert.Equal(t, []Message{{Severity: driven.SeverityWarning, Text: "1 record(s) could not be processed"}}, sink.Messages())
}

func TestGraphSink_FailWith(t *testing.T) {
	sink := NewGraphSink()
	boom := errors.New("closed")
	sink.FailWith(boom)

	err := sink.AddEntity(context.Background(), domain.NewEntity(domain.EntityCompany, "1"))

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, sink.Entities())
}

func TestGraphSink_Reset(t *testing.T) {
	sink := NewGraphSink()
	ctx := context.Background()
	_ = sink.AddEntity(ctx, domain.NewEntity(domain.EntityCompany, "1"))
	sink.AddMessage(ctx, driven.SeverityInform, "hello")

	sink.Reset()

	assert.Empty(t, sink.Entities())
	assert.Empty(t, sink.Messages())
}

func TestGraphSink_Unique(t *testing.T) {
	sink := NewGraphSink()
	ctx := context.Background()

	first := domain.NewEntity(domain.EntityPerson, "Jean Dupont 1970-5")
	first.Set("person.lastname", "Lastname", domain.MatchLoose, "Dupont")
	first.Link = domain.Link{Label: "Gérant"}
	second := domain.NewEntity(domain.EntityPerson, "Jean Dupont 1970-5")
	second.Set("date_naissance", "Naissance", domain.MatchStrict, "1970-05-12")
	second.Note = "note"
	other := domain.NewEntity(domain.EntityCompany, "Jean Dupont 1970-5")

	require.NoError(t, sink.AddEntity(ctx, first))
	require.NoError(t, sink.AddEntity(ctx, other))
	require.NoError(t, sink.AddEntity(ctx, second))

	unique := sink.Unique()

	require.Len(t, unique, 2)
	assert.Equal(t, domain.EntityPerson, unique[0].Kind)
	assert.Len(t, unique[0].Properties, 2)
	assert.Equal(t, "note", unique[0].Note)
	assert.Equal(t, "Gérant", unique[0].Link.Label)
	assert.Len(t, sink.Entities()[0].Properties, 1, "recorded entities are not modified")
}
