package eqtheory

import (
	"context"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sjslang/sjsc/pkg/theorysolver"
)

func eq(id, lhs, rhs string) Constraint {
	return Constraint{ID: id, LHS: lhs, RHS: rhs}
}

var _ = Describe("Theory", func() {
	DescribeTable("satisfiable constraints",
		func(constraints []Constraint, want Assignment) {
			result, err := Theory{}.Check(context.Background(), constraints)
			Expect(err).ToNot(HaveOccurred())
			model, ok := result.Model()
			Expect(ok).To(BeTrue())
			Expect(model).To(Equal(want))
		},
		Entry("should accept no constraints", nil, Assignment{}),
		Entry("should assign a variable its type",
			[]Constraint{eq("a", "x", "Int")},
			Assignment{"x": "Int"},
		),
		Entry("should propagate through variables",
			[]Constraint{eq("a", "x", "y"), eq("b", "y", "z"), eq("c", "z", "String")},
			Assignment{"x": "String", "y": "String", "z": "String"},
		),
		Entry("should accept repeated types",
			[]Constraint{eq("a", "x", "Int"), eq("b", "Int", "x"), eq("c", "Int", "Int")},
			Assignment{"x": "Int"},
		),
		Entry("should leave unconstrained variables out",
			[]Constraint{eq("a", "x", "y")},
			Assignment{},
		),
	)

	DescribeTable("unsatisfiable constraints",
		func(constraints []Constraint, core []string) {
			result, err := Theory{}.Check(context.Background(), constraints)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Satisfiable()).To(BeFalse())

			var ids []string
			for _, c := range result.Core() {
				ids = append(ids, c.ID)
			}
			Expect(ids).To(Equal(core))
		},
		Entry("should blame a direct clash",
			[]Constraint{eq("a", "x", "y"), eq("b", "Int", "String")},
			[]string{"b"},
		),
		Entry("should blame the chain between two types",
			[]Constraint{eq("a", "x", "Int"), eq("b", "y", "z"), eq("c", "x", "y"), eq("d", "y", "String")},
			[]string{"a", "c", "d"},
		),
		Entry("should prefer the shortest chain",
			[]Constraint{
				eq("a", "x", "Int"),
				eq("b", "x", "y"),
				eq("c", "y", "z"),
				eq("d", "z", "w"),
				eq("e", "x", "w"),
				eq("f", "w", "Bool"),
			},
			[]string{"a", "e", "f"},
		),
	)

	It("should be usable as a theory by the solver", func() {
		soft := []Constraint{
			eq("a", "x", "Int"),
			eq("b", "y", "x"),
			eq("c", "y", "String"),
			eq("d", "z", "Bool"),
		}
		for _, strategy := range theorysolver.StrategyNames() {
			finder, err := theorysolver.NewFinder[Constraint](strategy, theorysolver.FinderConfig{})
			Expect(err).ToNot(HaveOccurred())

			s := theorysolver.New[Constraint, Assignment](Theory{}, finder)
			solution, err := s.Solve(context.Background(), nil, soft, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(solution.FixingSet).To(HaveLen(1))
			Expect(solution.Model).To(HaveKeyWithValue("z", "Bool"))

			var kept []Constraint
			for _, c := range soft {
				if c != solution.FixingSet[0] {
					kept = append(kept, c)
				}
			}
			result, err := Theory{}.Check(context.Background(), kept)
			Expect(err).ToNot(HaveOccurred())
			model, ok := result.Model()
			Expect(ok).To(BeTrue())
			Expect(cmp.Diff(solution.Model, model)).To(BeEmpty())
		}
	})

	It("should report hard clashes", func() {
		hard := []Constraint{eq("a", "x", "Int"), eq("b", "x", "String")}
		finder := theorysolver.NewGreedyFinder[Constraint]()
		_, err := theorysolver.New[Constraint, Assignment](Theory{}, finder).
			Solve(context.Background(), hard, []Constraint{eq("c", "y", "Int")}, nil)
		Expect(err).To(MatchError(theorysolver.ErrHardUnsat))
	})

	It("should stop when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Theory{}.Check(ctx, []Constraint{eq("a", "x", "Int")})
		Expect(err).To(MatchError(context.Canceled))
	})
})
