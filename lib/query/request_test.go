package query

import (
	"errors"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"testing"
)

type movieFilter struct {
	Title  string
	Genres []literal.EnumValue
	Year   *int
}

// TestRequestSerialize tests the layout of operation documents
func TestRequestSerialize(t *testing.T) {
	s := literal.NewSerializer(nil)

	testCases := []struct {
		name string
		req  *Request
		want string
	}{
		{
			name: "NoArgsNoProjection",
			req:  NewRequest(OperationQuery, "movies"),
			want: "query {movies }",
		},
		{
			name: "Projection",
			req:  NewRequest(OperationQuery, "movies").Select(NewProjection().Field("title", "releaseYear")),
			want: "query {movies { title releaseYear } }",
		},
		{
			name: "Arguments",
			req: NewRequest(OperationQuery, "movies").
				Arg("filter", movieFilter{Title: "Up", Genres: []literal.EnumValue{"ANIMATION"}}).
				Arg("first", 10).
				Select(NewProjection().Field("title")),
			want: `query {movies(filter: {title:"Up", genres:[ANIMATION] }, first: 10) { title } }`,
		},
		{
			name: "NamedMutation",
			req: NewRequest(OperationMutation, "addReview").
				Named("AddReview").
				Arg("review", map[string]any{"stars": 5, "text": "great\n"}),
			want: `mutation AddReview {addReview(review: { stars: 5, text: "great\n" }) }`,
		},
		{
			name: "NullArgument",
			req:  NewRequest(OperationSubscription, "reviews").Arg("movieId", nil),
			want: "subscription {reviews(movieId: null) }",
		},
		{
			name: "NestedProjectionAndFragment",
			req: NewRequest(OperationQuery, "search").Select(
				NewProjection().
					Field("id").
					Child("actors", NewProjection().Field("name")).
					Child("empty", NewProjection()).
					On("Movie", NewProjection().Field("title")).
					On("Show", NewProjection()),
			),
			want: "query {search { id actors { name } empty ... on Movie { title } } }",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.Serialize(s)
			if err != nil {
				t.Fatalf("Failed to serialize: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s\nexpected %s", got, tc.want)
			}
		})
	}
}

// TestRequestDocumentsParse checks that generated documents are valid GraphQL
func TestRequestDocumentsParse(t *testing.T) {
	year := 2009
	req := NewRequest(OperationQuery, "movies").
		Named("Movies").
		Arg("filter", movieFilter{Title: "Up \"again\"", Genres: []literal.EnumValue{"ANIMATION", "DRAMA"}, Year: &year}).
		Select(NewProjection().Field("title").Child("director", NewProjection().Field("name")))

	doc, err := req.Serialize(literal.NewSerializer(nil))
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}
	if _, err := parser.Parse(parser.ParseParams{Source: doc}); err != nil {
		t.Errorf("document %s does not parse: %v", doc, err)
	}
}

// TestRequestErrors tests validation and error propagation
func TestRequestErrors(t *testing.T) {
	s := literal.NewSerializer(nil)

	if _, err := (&Request{OperationType: OperationQuery}).Serialize(s); !errors.Is(err, ErrMissingOperationName) {
		t.Errorf("expected ErrMissingOperationName, got %v", err)
	}

	if _, err := NewRequest("select", "movies").Serialize(s); err == nil {
		t.Error("expected an error for an invalid operation type")
	}

	_, err := NewRequest(OperationQuery, "movies").Arg("callback", func() {}).Serialize(s)
	var unsupported *literal.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Errorf("expected the wrapped UnsupportedTypeError, got %v", err)
	}
}

// TestParseOperationType tests keyword parsing
func TestParseOperationType(t *testing.T) {
	for in, want := range map[string]OperationType{
		"query":        OperationQuery,
		" Mutation ":   OperationMutation,
		"SUBSCRIPTION": OperationSubscription,
		"":             OperationQuery,
	} {
		got, err := ParseOperationType(in)
		if err != nil || got != want {
			t.Errorf("ParseOperationType(%q) = %s, %v; expected %s", in, got, err, want)
		}
	}
}
