package connector

// Element and attribute names of the descriptor.
const (
	elConnector                   = "connector"
	elModuleName                  = "module-name"
	elVendorName                  = "vendor-name"
	elEISType                     = "eis-type"
	elLicense                     = "license"
	elLicenseRequired             = "license-required"
	elVersion                     = "version"
	elSpecVersion                 = "spec-version"
	elResourceAdapterVersion      = "resourceadapter-version"
	elResourceAdapter             = "resourceadapter"
	elResourceAdapterClass        = "resourceadapter-class"
	elRequiredWorkContext         = "required-work-context"
	elDescription                 = "description"
	elDisplayName                 = "display-name"
	elIcon                        = "icon"
	elSmallIcon                   = "small-icon"
	elLargeIcon                   = "large-icon"
	elConfigProperty              = "config-property"
	elConfigPropertyName          = "config-property-name"
	elConfigPropertyType          = "config-property-type"
	elConfigPropertyValue         = "config-property-value"
	elConfigPropertyIgnore        = "config-property-ignore"
	elConfigPropertyDynamic       = "config-property-supports-dynamic-updates"
	elConfigPropertyConfidential  = "config-property-confidential"
	elOutboundResourceAdapter     = "outbound-resourceadapter"
	elInboundResourceAdapter      = "inbound-resourceadapter"
	elConnectionDefinition        = "connection-definition"
	elManagedConnectionFactory    = "managedconnectionfactory-class"
	elConnectionFactoryInterface  = "connectionfactory-interface"
	elConnectionFactoryImplClass  = "connectionfactory-impl-class"
	elConnectionInterface         = "connection-interface"
	elConnectionImplClass         = "connection-impl-class"
	elTransactionSupport          = "transaction-support"
	elReauthenticationSupport     = "reauthentication-support"
	elAuthenticationMechanism     = "authentication-mechanism"
	elAuthenticationMechanismType = "authentication-mechanism-type"
	elCredentialInterface         = "credential-interface"
	elAdminObject                 = "adminobject"
	elAdminObjectInterface        = "adminobject-interface"
	elAdminObjectClass            = "adminobject-class"
	elSecurityPermission          = "security-permission"
	elSecurityPermissionSpec      = "security-permission-spec"
	elMessageAdapter              = "messageadapter"
	elMessageListener             = "messagelistener"
	elMessageListenerType         = "messagelistener-type"
	elActivationspec              = "activationspec"
	elActivationspecClass         = "activationspec-class"
	elRequiredConfigProperty      = "required-config-property"

	attrID               = "id"
	attrLang             = "lang"
	attrVersion          = "version"
	attrMetadataComplete = "metadata-complete"
)
