package tex2mml_test

import (
	"fmt"

	tex2mml "github.com/alnah/go-tex2mml"
)

// Example demonstrates LaTeX normalization without a compiler backend.
func Example() {
	fmt.Println(tex2mml.Normalize(`{}_{3}^{0}R + \dot{x}`))
	// Output: \hspace{0pt}\prescript{0}{3}{R} + \overset{˙}{x}
}

// Example_isDisplay demonstrates display-mode classification.
func Example_isDisplay() {
	fmt.Println(tex2mml.IsDisplay(`a + b`))
	fmt.Println(tex2mml.IsDisplay(`\sum_{n=1}^{\infty} \frac{1}{n^2}`))
	// Output:
	// false
	// true
}

// Example_postprocessMathML demonstrates cleanup of compiler output.
func Example_postprocessMathML() {
	raw := `<math><mrow></mrow><mi mathvariant="normal">R</mi></math>`
	fmt.Println(tex2mml.PostprocessMathML(raw))
	// Output: <math xmlns="http://www.w3.org/1998/Math/MathML"><mi mathvariant="normal">R</mi></math>
}
