package match

// schemaBWireForMatchTests is the same certificate-hierarchy fixture used
// in the model package's decode tests, duplicated here so the match
// package's tests don't depend on model's unexported test data.
func schemaBWireForMatchTests() []byte {
	return []byte{
		0x40, 0x04, 0x00, 0x01, 0x00, 0x00, 0x03, 0x01, 0x00, 0x43, 0x01, 0x01,
		0x41, 0x1f, 0x03, 0x01, 0x00, 0x31, 0x0e, 0x03, 0x01, 0x01, 0x01, 0x09,
		0x08, 0x07, 0x65, 0x78, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x31, 0x0a, 0x03,
		0x01, 0x11, 0x01, 0x05, 0x08, 0x03, 0x4b, 0x45, 0x59, 0x41, 0x31, 0x03,
		0x01, 0x01, 0x34, 0x01, 0x00, 0x05, 0x05, 0x23, 0x72, 0x6f, 0x6f, 0x74,
		0x31, 0x0a, 0x03, 0x01, 0x02, 0x01, 0x05, 0x08, 0x03, 0x4b, 0x45, 0x59,
		0x32, 0x06, 0x03, 0x01, 0x06, 0x02, 0x01, 0x01, 0x32, 0x06, 0x03, 0x01,
		0x0b, 0x02, 0x01, 0x01, 0x32, 0x06, 0x03, 0x01, 0x0e, 0x02, 0x01, 0x01,
		0x41, 0x0e, 0x03, 0x01, 0x02, 0x34, 0x01, 0x01, 0x32, 0x06, 0x03, 0x01,
		0x03, 0x02, 0x01, 0x02, 0x41, 0x0e, 0x03, 0x01, 0x03, 0x34, 0x01, 0x02,
		0x32, 0x06, 0x03, 0x01, 0x04, 0x02, 0x01, 0x03, 0x41, 0x0e, 0x03, 0x01,
		0x04, 0x34, 0x01, 0x03, 0x32, 0x06, 0x03, 0x01, 0x05, 0x02, 0x01, 0x04,
		0x41, 0x0f, 0x03, 0x01, 0x05, 0x34, 0x01, 0x04, 0x05, 0x07, 0x23, 0x61,
		0x6e, 0x63, 0x68, 0x6f, 0x72, 0x41, 0x12, 0x03, 0x01, 0x06, 0x34, 0x01,
		0x01, 0x31, 0x0a, 0x03, 0x01, 0x07, 0x01, 0x05, 0x08, 0x03, 0x4b, 0x45,
		0x59, 0x41, 0x0e, 0x03, 0x01, 0x07, 0x34, 0x01, 0x06, 0x32, 0x06, 0x03,
		0x01, 0x08, 0x02, 0x01, 0x02, 0x41, 0x0e, 0x03, 0x01, 0x08, 0x34, 0x01,
		0x07, 0x32, 0x06, 0x03, 0x01, 0x09, 0x02, 0x01, 0x03, 0x41, 0x0e, 0x03,
		0x01, 0x09, 0x34, 0x01, 0x08, 0x32, 0x06, 0x03, 0x01, 0x0a, 0x02, 0x01,
		0x04, 0x41, 0x17, 0x03, 0x01, 0x0a, 0x34, 0x01, 0x09, 0x05, 0x0c, 0x23,
		0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x5f, 0x63, 0x65, 0x72, 0x74, 0x33,
		0x01, 0x05, 0x41, 0x0e, 0x03, 0x01, 0x0b, 0x34, 0x01, 0x01, 0x32, 0x06,
		0x03, 0x01, 0x0c, 0x02, 0x01, 0x05, 0x41, 0x0e, 0x03, 0x01, 0x0c, 0x34,
		0x01, 0x0b, 0x32, 0x06, 0x03, 0x01, 0x0d, 0x02, 0x01, 0x06, 0x41, 0x10,
		0x03, 0x01, 0x0d, 0x34, 0x01, 0x0c, 0x05, 0x05, 0x23, 0x64, 0x61, 0x74,
		0x61, 0x33, 0x01, 0x10, 0x41, 0x12, 0x03, 0x01, 0x0e, 0x34, 0x01, 0x01,
		0x31, 0x0a, 0x03, 0x01, 0x0f, 0x01, 0x05, 0x08, 0x03, 0x4b, 0x45, 0x59,
		0x41, 0x0e, 0x03, 0x01, 0x0f, 0x34, 0x01, 0x0e, 0x32, 0x06, 0x03, 0x01,
		0x10, 0x02, 0x01, 0x07, 0x41, 0x13, 0x03, 0x01, 0x10, 0x34, 0x01, 0x0f,
		0x05, 0x0b, 0x23, 0x61, 0x75, 0x74, 0x68, 0x6f, 0x72, 0x5f, 0x6b, 0x65,
		0x79, 0x41, 0x0e, 0x03, 0x01, 0x11, 0x34, 0x01, 0x00, 0x32, 0x06, 0x03,
		0x01, 0x12, 0x02, 0x01, 0x02, 0x41, 0x0e, 0x03, 0x01, 0x12, 0x34, 0x01,
		0x11, 0x32, 0x06, 0x03, 0x01, 0x13, 0x02, 0x01, 0x03, 0x41, 0x0e, 0x03,
		0x01, 0x13, 0x34, 0x01, 0x12, 0x32, 0x06, 0x03, 0x01, 0x14, 0x02, 0x01,
		0x04, 0x41, 0x0c, 0x03, 0x01, 0x14, 0x34, 0x01, 0x13, 0x05, 0x04, 0x23,
		0x4b, 0x45, 0x59, 0x42, 0x0b, 0x02, 0x01, 0x01, 0x05, 0x06, 0x61, 0x75,
		0x74, 0x68, 0x6f, 0x72,
	}
}

// schemaAWireForMatchTests is the branching-pattern-edge fixture used in
// the model package's decode tests, duplicated here so the match package's
// tests don't depend on model's unexported test data.
func schemaAWireForMatchTests() []byte {
	return []byte{
		0x40, 0x04, 0x00, 0x01, 0x00, 0x00, 0x03, 0x01, 0x00, 0x43, 0x01, 0x06,
		0x41, 0x3e, 0x03, 0x01, 0x00, 0x32, 0x16, 0x03, 0x01, 0x01, 0x02, 0x01,
		0x01, 0x22, 0x0e, 0x21, 0x05, 0x01, 0x03, 0x08, 0x01, 0x61, 0x21, 0x05,
		0x01, 0x03, 0x08, 0x01, 0x78, 0x32, 0x06, 0x03, 0x01, 0x04, 0x02, 0x01,
		0x01, 0x32, 0x11, 0x03, 0x01, 0x07, 0x02, 0x01, 0x04, 0x22, 0x09, 0x21,
		0x07, 0x01, 0x05, 0x08, 0x03, 0x78, 0x78, 0x78, 0x32, 0x06, 0x03, 0x01,
		0x0a, 0x02, 0x01, 0x04, 0x41, 0x0e, 0x03, 0x01, 0x01, 0x34, 0x01, 0x00,
		0x32, 0x06, 0x03, 0x01, 0x02, 0x02, 0x01, 0x02, 0x41, 0x1c, 0x03, 0x01,
		0x02, 0x34, 0x01, 0x01, 0x32, 0x14, 0x03, 0x01, 0x03, 0x02, 0x01, 0x03,
		0x22, 0x05, 0x21, 0x03, 0x02, 0x01, 0x02, 0x22, 0x05, 0x21, 0x03, 0x02,
		0x01, 0x01, 0x41, 0x11, 0x03, 0x01, 0x03, 0x34, 0x01, 0x02, 0x05, 0x03,
		0x23, 0x72, 0x31, 0x33, 0x01, 0x09, 0x33, 0x01, 0x0c, 0x41, 0x1e, 0x03,
		0x01, 0x04, 0x34, 0x01, 0x00, 0x32, 0x16, 0x03, 0x01, 0x05, 0x02, 0x01,
		0x02, 0x22, 0x0e, 0x21, 0x05, 0x01, 0x03, 0x08, 0x01, 0x62, 0x21, 0x05,
		0x01, 0x03, 0x08, 0x01, 0x79, 0x41, 0x0e, 0x03, 0x01, 0x05, 0x34, 0x01,
		0x04, 0x32, 0x06, 0x03, 0x01, 0x06, 0x02, 0x01, 0x03, 0x41, 0x11, 0x03,
		0x01, 0x06, 0x34, 0x01, 0x05, 0x05, 0x03, 0x23, 0x72, 0x31, 0x33, 0x01,
		0x09, 0x33, 0x01, 0x0c, 0x41, 0x0e, 0x03, 0x01, 0x07, 0x34, 0x01, 0x00,
		0x32, 0x06, 0x03, 0x01, 0x08, 0x02, 0x01, 0x05, 0x41, 0x0e, 0x03, 0x01,
		0x08, 0x34, 0x01, 0x07, 0x32, 0x06, 0x03, 0x01, 0x09, 0x02, 0x01, 0x06,
		0x41, 0x0b, 0x03, 0x01, 0x09, 0x34, 0x01, 0x08, 0x05, 0x03, 0x23, 0x72,
		0x32, 0x41, 0x19, 0x03, 0x01, 0x0a, 0x34, 0x01, 0x00, 0x32, 0x11, 0x03,
		0x01, 0x0b, 0x02, 0x01, 0x05, 0x22, 0x09, 0x21, 0x07, 0x01, 0x05, 0x08,
		0x03, 0x79, 0x79, 0x79, 0x41, 0x0e, 0x03, 0x01, 0x0b, 0x34, 0x01, 0x0a,
		0x32, 0x06, 0x03, 0x01, 0x0c, 0x02, 0x01, 0x06, 0x41, 0x0b, 0x03, 0x01,
		0x0c, 0x34, 0x01, 0x0b, 0x05, 0x03, 0x23, 0x72, 0x33, 0x42, 0x06, 0x02,
		0x01, 0x01, 0x05, 0x01, 0x61, 0x42, 0x06, 0x02, 0x01, 0x02, 0x05, 0x01,
		0x62, 0x42, 0x06, 0x02, 0x01, 0x03, 0x05, 0x01, 0x63, 0x42, 0x06, 0x02,
		0x01, 0x04, 0x05, 0x01, 0x78, 0x42, 0x06, 0x02, 0x01, 0x05, 0x05, 0x01,
		0x79, 0x42, 0x06, 0x02, 0x01, 0x06, 0x05, 0x01, 0x7a,
	}
}
