/*
Package bigint implements arbitrary-precision signed integer arithmetic.

A BigInt stores its value in sign-magnitude form: a little-endian slice of
digits (the Word type, configurable at build time to 8, 16, 32 or 64 bits)
plus a sign bit. All arithmetic is schoolbook: plain add/sub/mul, restoring
long division, binary GCD, and exponentiation by squaring — there is no
Karatsuba or FFT multiplication and no constant-time guarantee.

The zero value for a BigInt corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	var x BigInt // x is a BigInt of value 0

Alternatively, new BigInt values can be allocated and initialized with one
of the New functions:

	func New() *BigInt
	func NewFromInt64(x int64) *BigInt
	func NewFromUint64(x uint64) *BigInt

Setters, numeric operations and predicates are represented as methods of
the form:

	func (z *BigInt) SetV(v V) *BigInt               // z = v
	func (z *BigInt) Unary(x *BigInt) *BigInt         // z = unary x
	func (z *BigInt) Binary(x, y *BigInt) *BigInt     // z = x binary y
	func (x *BigInt) Pred() P                         // p = pred(x)

For unary and binary operations, the result is the receiver (usually named
z in that case; see below); if it is one of the operands x or y it may be
safely overwritten (and its memory reused).

Arithmetic expressions are typically written as a sequence of individual
method calls, with each call corresponding to an operation. The receiver
denotes the result and the method arguments are the operation's operands.
For instance, given three *BigInt values a, b and c, the invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before. Unless specified otherwise, operations permit
aliasing of parameters, so it is perfectly fine to write

	sum.Add(sum, x)

to accumulate values x in a sum.

Notational convention: incoming method parameters (including the receiver)
are named consistently in the API to clarify their use. Incoming operands
are usually named x, y, a, b, and so on, but never z. A parameter specifying
the result is named z (typically the receiver).

Methods which don't require a result value to be passed in (for instance,
BigInt.Sign) simply return the result. In this case, the receiver is
typically the first operand, named x or z interchangeably since no mutation
occurs:

	func (z *BigInt) Sign() int

Various functions support conversions between strings and corresponding
numeric values, and vice versa: BigInt implements the Stringer interface for
a default base-10 string representation, and provides Parse and
ParseFraction for reading a value from a string in a variety of radices (see
their documentation for the accepted grammar).

Every fallible operation reports failures through the *Error type, whose
Kind groups them into out-of-memory, domain, range, invalid-argument and
overflow classes; use errors.Is against the Err* sentinels to classify a
failure without inspecting its message.
*/
package bigint
