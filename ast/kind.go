package ast

// Kind discriminates AST node types.
type Kind string

const (
	KindDocument Kind = "Document"

	KindOperationDefinition Kind = "OperationDefinition"
	KindFragmentDefinition  Kind = "FragmentDefinition"
	KindVariableDefinition  Kind = "VariableDefinition"
	KindSelectionSet        Kind = "SelectionSet"
	KindField               Kind = "Field"
	KindFragmentSpread      Kind = "FragmentSpread"
	KindInlineFragment      Kind = "InlineFragment"
	KindArgument            Kind = "Argument"
	KindDirective           Kind = "Directive"

	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"
	KindVariable     Kind = "Variable"

	KindNamedType        Kind = "NamedType"
	KindListType         Kind = "ListType"
	KindNonNullNamedType Kind = "NonNullNamedType"
	KindNonNullListType  Kind = "NonNullListType"

	KindSchemaDefinition          Kind = "SchemaDefinition"
	KindOperationTypeDefinition   Kind = "OperationTypeDefinition"
	KindScalarTypeDefinition      Kind = "ScalarTypeDefinition"
	KindObjectTypeDefinition      Kind = "ObjectTypeDefinition"
	KindInterfaceTypeDefinition   Kind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition       Kind = "UnionTypeDefinition"
	KindEnumTypeDefinition        Kind = "EnumTypeDefinition"
	KindInputObjectTypeDefinition Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition       Kind = "DirectiveDefinition"
	KindFieldDefinition           Kind = "FieldDefinition"
	KindInputValueDefinition      Kind = "InputValueDefinition"
	KindEnumValueDefinition       Kind = "EnumValueDefinition"

	KindSchemaExtension          Kind = "SchemaExtension"
	KindScalarTypeExtension      Kind = "ScalarTypeExtension"
	KindObjectTypeExtension      Kind = "ObjectTypeExtension"
	KindInterfaceTypeExtension   Kind = "InterfaceTypeExtension"
	KindUnionTypeExtension       Kind = "UnionTypeExtension"
	KindEnumTypeExtension        Kind = "EnumTypeExtension"
	KindInputObjectTypeExtension Kind = "InputObjectTypeExtension"
)
