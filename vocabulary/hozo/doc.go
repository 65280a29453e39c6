// Package hozo defines the fixed RDFS/OWL vocabulary the converter writes
// and registers its predicates with the semstreams vocabulary registry.
//
// Predicates use the three-level dotted notation of the registry
// (hozo.concept.label). Each one records the standard IRI it is written as,
// so tooling can list the mapping without running a conversion:
//
//	for _, m := range hozo.Mappings() {
//	    meta := vocabulary.GetPredicateMetadata(m.Predicate)
//	    fmt.Println(m.Predicate, m.QName, meta.StandardIRI)
//	}
package hozo
