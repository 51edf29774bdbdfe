// Package query builds GraphQL operation documents whose arguments are written as
// input-value literals by a literal.ISerializer.
//
// A Request names the operation type (query, mutation, subscription), the root field
// (operation name), its arguments and the selected fields (Projection):
//
//	req := query.NewRequest(query.OperationQuery, "movies").
//		Arg("filter", MovieFilter{Title: "Up"}).
//		Select(query.NewProjection().Field("title").Child("actors", query.NewProjection().Field("name")))
//
//	doc, err := req.Serialize(literal.NewSerializer(nil))
//	// query {movies(filter: {title:"Up" }) { title actors { name } } }
package query
