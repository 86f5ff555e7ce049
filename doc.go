/*
Package bignum implements extended-range decimal floating-point numbers.
It is specifically designed for domains where quantities routinely exceed the
range of a native float64 while arbitrary-precision arithmetic is unnecessary
and too slow, such as incremental simulation games.

# Representation

[Big] is a value over five variants:

  - Zero: the exact additive identity.
  - Finite: mantissa * 10^exponent, where the mantissa is a float64 confined
    to 1.0 <= |mantissa| < 10.0 and the exponent is an int64.
  - Positive and negative infinity: signed overflow sentinels.
  - NaN: the undefined-result sentinel.

A finite value therefore spans magnitudes from roughly 10^math.MinInt64 up to
just under 10^math.MaxInt64, in both signs, with the precision of a float64
significand. Exactly one variant describes any value; in particular a finite
value never carries a zero mantissa, as that would be a second representation
of Zero.

The zero value of the type is the numeric value 0 and is ready to use.

# Operations

Every arithmetic operation exists in three forms:

  - an allocating form returning a new value: [Big.Add], [Big.Sub], [Big.Mul],
    [Big.Quo], [Big.Rem], [Big.Pow], [Big.PowInt], [Big.Log10], [Big.Ln],
    [Big.Log];
  - a mutating form writing the result into the receiver to avoid allocation:
    [Big.AddMut], [Big.SubMut], and so on;
  - for the core operations, a raw form that additionally skips normalization:
    [Big.AddRaw], [Big.SubRaw], [Big.MulRaw], [Big.QuoRaw], [Big.RemRaw].

The allocating and mutating forms produce identical results for identical
inputs. The raw forms are fast paths for long chains of operations: the caller
defers normalization to the end of the chain and restores the invariant with a
single [Big.Normalize] call. Until then the value must not be compared,
formatted, or fed into non-raw operations; using a raw result without eventual
normalization is documented misuse, not a library defect.

Each operation decides every combination of the five variants explicitly, so
results remain predictable where naive float arithmetic would drift:
infinities propagate with algebraic signs, indeterminate forms (such as
Infinity * Zero, Infinity - Infinity, and 0/0) yield NaN, and exponent
overflow collapses deterministically to the signed infinity or to Zero.

# Comparison

[Big.Cmp] defines a partial order returning [Less], [Equal], [Greater], or
[Unordered]. NaN is incomparable with everything, including another NaN, and a
pair of same-signed infinities is likewise incomparable: infinities model
unknown unbounded magnitudes rather than one canonical point, so even
PositiveInfinity == PositiveInfinity is false under [Big.Equal]. Callers
sorting values must decide a policy for incomparable pairs explicitly.

The Go == operator compares representations, not numeric values, and would
make the sentinels self-equal; always use [Big.Equal] and [Big.Cmp].

# Conversions

Construct values with [New], from native numeric types with [NewFromFloat64],
[NewFromFloat32], [NewFromInt], [NewFromInt64], [NewFromInt32], and
[NewFromUint64], or from decimal text with [Parse]. Convert back with
[Big.Float64], which saturates to the float64 infinities when the exponent is
out of native range, and render text with [Big.String], [Big.StringFixed], and
[Big.StringExponential].

# Concurrency

Big is a small self-contained value: copies share nothing, so distinct
goroutines may operate on their own copies freely. The mutating and raw forms
require exclusive access to the mutated operand, the same single-writer
discipline as any plain local variable.

# Errors

Mathematical undefinedness is not an error: indeterminate forms produce the
NaN value, which propagates silently through subsequent operations. Only
[Parse] can fail, and a malformed string is reported as an error, never
coerced to NaN, since bad caller input and legitimate mathematical
indeterminacy have different causes. No operation panics except [MustParse].
*/
package bignum
